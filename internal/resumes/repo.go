package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	// ListByUser returns a user's resumes, newest first. A non-empty
	// jobCategory restricts the result to that category.
	ListByUser(ctx context.Context, userID, jobCategory string) ([]Resume, error)
}
