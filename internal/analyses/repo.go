package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	// ListByUser returns all analyses for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]Analysis, error)
}
