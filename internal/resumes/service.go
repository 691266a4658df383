package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumegen-backend/internal/documents"
	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/shared/metrics"
)

var (
	// ErrNoDocuments is returned when the caller owns no documents; the
	// paid oracle call is never made on empty input.
	ErrNoDocuments = errors.New("no documents found")
	// ErrInvalidInput covers a missing job category.
	ErrInvalidInput = errors.New("invalid input")
)

// Service contains business logic for resume generation.
type Service struct {
	Repo    Repo
	DocRepo documents.Repo
	LLM     llm.Client
}

// Create loads the caller's documents, generates a resume tailored to the
// job category and persists it.
func (s *Service) Create(ctx context.Context, userID, jobCategory, jobTitle string) (Resume, error) {
	jobCategory = strings.TrimSpace(jobCategory)
	jobTitle = strings.TrimSpace(jobTitle)
	if jobCategory == "" {
		return Resume{}, fmt.Errorf("%w: jobCategory is required", ErrInvalidInput)
	}

	docs, err := s.DocRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return Resume{}, err
	}
	if len(docs) == 0 {
		return Resume{}, ErrNoDocuments
	}

	inputs := make([]llm.DocumentInput, 0, len(docs))
	for _, doc := range docs {
		inputs = append(inputs, llm.DocumentInput{
			Type:    doc.Type,
			Title:   doc.Title,
			Content: doc.Content,
		})
	}

	metrics.IncGenerationStarted()
	start := time.Now()
	content, err := s.LLM.GenerateResume(ctx, inputs, jobCategory, jobTitle)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return Resume{}, err
	}
	metrics.IncGenerationCompleted()

	resume := Resume{
		ID:          uuid.NewString(),
		UserID:      userID,
		JobCategory: jobCategory,
		JobTitle:    jobTitle,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// List returns the caller's resumes, optionally filtered by job category.
func (s *Service) List(ctx context.Context, userID, jobCategory string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID, strings.TrimSpace(jobCategory))
}
