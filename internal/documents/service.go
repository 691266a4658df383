package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// forceRetryLimit bounds re-read attempts for a PATCH without a version
// (force semantics) when the conditional write keeps losing.
const forceRetryLimit = 3

// Service contains business logic for documents.
type Service struct {
	Repo Repo
}

// CreateInput is the validated body of a document create request.
type CreateInput struct {
	Type    string
	Title   string
	Content string
}

// UpdateInput is the body of a full update (PUT). Nil means the field was
// absent from the request.
type UpdateInput struct {
	Type    *string
	Title   *string
	Content *string
}

// PatchInput is the body of a partial update (PATCH). Nil means absent;
// an explicit empty string is applied as a value.
type PatchInput struct {
	Title   *string
	Content *string
	Version *int64
}

// Create validates and persists a new document at version 1.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Document, error) {
	if !IsValidType(in.Type) {
		return Document{}, fmt.Errorf("%w: unknown document type", ErrInvalidInput)
	}
	if errs := ValidateFields(in.Type, in.Title, in.Content); len(errs) > 0 {
		return Document{}, &ValidationError{Errors: errs}
	}

	now := time.Now().UTC()
	doc := Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      NormalizeType(in.Type),
		Title:     in.Title,
		Content:   in.Content,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// List returns all documents owned by userID. An invalid type filter is
// silently ignored so malformed query strings degrade to "all documents".
func (s *Service) List(ctx context.Context, userID, typeFilter string) ([]Document, error) {
	filter := ""
	if IsValidType(typeFilter) {
		filter = NormalizeType(typeFilter)
	}
	return s.Repo.ListByUser(ctx, userID, filter)
}

// Get returns a single document after the ownership check.
func (s *Service) Get(ctx context.Context, documentID, requesterID string) (Document, error) {
	return s.getOwned(ctx, documentID, requesterID)
}

// Update is the PUT path: no version check, last writer wins.
func (s *Service) Update(ctx context.Context, documentID, requesterID string, in UpdateInput) (Document, error) {
	doc, err := s.getOwned(ctx, documentID, requesterID)
	if err != nil {
		return Document{}, err
	}
	if in.Title == nil && in.Content == nil {
		return Document{}, fmt.Errorf("%w: at least one of title or content is required", ErrInvalidInput)
	}
	if in.Type != nil && in.Title != nil {
		if !IsValidType(*in.Type) {
			return Document{}, fmt.Errorf("%w: unknown document type", ErrInvalidInput)
		}
		if errs := ValidateFields(*in.Type, *in.Title, stringOrEmpty(in.Content)); len(errs) > 0 {
			return Document{}, &ValidationError{Errors: errs}
		}
	}

	if in.Type != nil {
		doc.Type = NormalizeType(*in.Type)
	}
	if in.Title != nil {
		doc.Title = *in.Title
	}
	if in.Content != nil {
		doc.Content = *in.Content
	}
	doc.Version++
	doc.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Patch is the optimistic-concurrency path. A caller-supplied version that
// does not match the stored one fails with ConflictError; an omitted version
// is treated as force. The write itself is conditional on the version
// observed at read time, so a competing writer cannot slip in between.
func (s *Service) Patch(ctx context.Context, documentID, requesterID string, in PatchInput) (Document, error) {
	if in.Title == nil && in.Content == nil {
		return Document{}, fmt.Errorf("%w: at least one of title or content is required", ErrInvalidInput)
	}
	for attempt := 0; ; attempt++ {
		current, err := s.getOwned(ctx, documentID, requesterID)
		if err != nil {
			return Document{}, err
		}
		if in.Title != nil {
			if errs := ValidateFields(current.Type, *in.Title, stringOrEmpty(in.Content)); len(errs) > 0 {
				return Document{}, &ValidationError{Errors: errs}
			}
		}
		if in.Version != nil && *in.Version != current.Version {
			return Document{}, &ConflictError{CurrentVersion: current.Version, Current: current}
		}

		next := current
		if in.Title != nil {
			next.Title = *in.Title
		}
		if in.Content != nil {
			next.Content = *in.Content
		}
		next.Version = current.Version + 1
		next.UpdatedAt = time.Now().UTC()

		err = s.Repo.UpdateIfVersion(ctx, next, current.Version)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, errVersionMismatch) {
			return Document{}, err
		}
		// Lost the race. With an explicit version the next read reports the
		// conflict; force mode retries against the fresh version.
		if in.Version != nil || attempt >= forceRetryLimit {
			latest, readErr := s.getOwned(ctx, documentID, requesterID)
			if readErr != nil {
				return Document{}, readErr
			}
			return Document{}, &ConflictError{CurrentVersion: latest.Version, Current: latest}
		}
	}
}

// Delete hard-deletes an owned document.
func (s *Service) Delete(ctx context.Context, documentID, requesterID string) error {
	if _, err := s.getOwned(ctx, documentID, requesterID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, documentID)
}

// getOwned fetches a document and authorizes the requester: absent ids fail
// with ErrNotFound, foreign documents with ErrForbidden. One read, no
// atomicity with any subsequent write.
func (s *Service) getOwned(ctx context.Context, documentID, requesterID string) (Document, error) {
	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if doc.UserID != requesterID {
		return Document{}, ErrForbidden
	}
	return doc, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
