package analyses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resumegen-backend/internal/documents"
	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/shared/metrics"
)

// ErrNoDocuments is returned when the caller owns no documents; the paid
// oracle call is never made on empty input.
var ErrNoDocuments = errors.New("no documents found")

// Service contains business logic for personality analyses.
type Service struct {
	Repo    Repo
	DocRepo documents.Repo
	LLM     llm.Client
}

// Create loads the caller's documents, generates an analysis and persists it.
func (s *Service) Create(ctx context.Context, userID string) (Analysis, error) {
	docs, err := s.DocRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return Analysis{}, err
	}
	if len(docs) == 0 {
		return Analysis{}, ErrNoDocuments
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
	result, err := s.LLM.GenerateAnalysis(ctx, inputs)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return Analysis{}, err
	}
	metrics.IncGenerationCompleted()

	analysis := Analysis{
		ID:        uuid.NewString(),
		UserID:    userID,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

// List returns the caller's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID)
}
