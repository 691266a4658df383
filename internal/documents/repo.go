package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	// ListByUser returns all documents for a user, newest first. A non-empty
	// docType restricts the result to that type.
	ListByUser(ctx context.Context, userID, docType string) ([]Document, error)
	// Update overwrites the stored document unconditionally (PUT semantics).
	Update(ctx context.Context, doc Document) error
	// UpdateIfVersion writes doc only while the stored version still equals
	// expected. A lost race surfaces as errVersionMismatch.
	UpdateIfVersion(ctx context.Context, doc Document, expected int64) error
	Delete(ctx context.Context, documentID string) error
}
