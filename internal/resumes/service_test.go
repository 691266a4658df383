package resumes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumegen-backend/internal/documents"
	"resumegen-backend/internal/llm"
)

type stubLLM struct {
	lastCategory string
	lastTitle    string
	err          error
}

func (s *stubLLM) GenerateAnalysis(ctx context.Context, docs []llm.DocumentInput) (llm.PersonalityResult, error) {
	return llm.PersonalityResult{}, s.err
}

func (s *stubLLM) GenerateResume(ctx context.Context, docs []llm.DocumentInput, jobCategory, jobTitle string) (llm.ResumeResult, error) {
	s.lastCategory = jobCategory
	s.lastTitle = jobTitle
	if s.err != nil {
		return llm.ResumeResult{}, s.err
	}
	return llm.ResumeResult{Headline: "Generated for " + jobCategory}, nil
}

func newTestService(oracle llm.Client) (*Service, documents.Repo) {
	docRepo := documents.NewMemoryRepo()
	return &Service{Repo: NewMemoryRepo(), DocRepo: docRepo, LLM: oracle}, docRepo
}

func seedDocument(t *testing.T, repo documents.Repo, userID string) {
	t.Helper()
	docSvc := &documents.Service{Repo: repo}
	_, err := docSvc.Create(context.Background(), userID, documents.CreateInput{
		Type:    "skills",
		Title:   "Go",
		Content: "5 years",
	})
	require.NoError(t, err)
}

func TestCreateRequiresJobCategory(t *testing.T) {
	svc, _ := newTestService(&stubLLM{})

	_, err := svc.Create(context.Background(), "user-a", "  ", "Backend Engineer")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequiresDocuments(t *testing.T) {
	oracle := &stubLLM{}
	svc, _ := newTestService(oracle)

	_, err := svc.Create(context.Background(), "user-a", "engineering", "")
	assert.ErrorIs(t, err, ErrNoDocuments)
	assert.Empty(t, oracle.lastCategory, "oracle must not be called on empty input")
}

func TestCreatePersistsResume(t *testing.T) {
	oracle := &stubLLM{}
	svc, docRepo := newTestService(oracle)
	seedDocument(t, docRepo, "user-a")

	resume, err := svc.Create(context.Background(), "user-a", " engineering ", " Backend Engineer ")
	require.NoError(t, err)
	assert.NotEmpty(t, resume.ID)
	assert.Equal(t, "engineering", resume.JobCategory)
	assert.Equal(t, "Backend Engineer", resume.JobTitle)
	assert.Equal(t, "Generated for engineering", resume.Content.Headline)
	assert.Equal(t, "engineering", oracle.lastCategory)
	assert.Equal(t, "Backend Engineer", oracle.lastTitle)

	stored, err := svc.List(context.Background(), "user-a", "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resume.ID, stored[0].ID)
}

func TestListFiltersByJobCategory(t *testing.T) {
	svc, docRepo := newTestService(&stubLLM{})
	ctx := context.Background()
	seedDocument(t, docRepo, "user-a")

	_, err := svc.Create(ctx, "user-a", "engineering", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-a", "design", "")
	require.NoError(t, err)

	all, err := svc.List(ctx, "user-a", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	engineering, err := svc.List(ctx, "user-a", "engineering")
	require.NoError(t, err)
	require.Len(t, engineering, 1)
	assert.Equal(t, "engineering", engineering[0].JobCategory)

	none, err := svc.List(ctx, "user-b", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateSurfacesOracleErrors(t *testing.T) {
	svc, docRepo := newTestService(&stubLLM{err: llm.ErrThrottled})
	seedDocument(t, docRepo, "user-a")

	_, err := svc.Create(context.Background(), "user-a", "engineering", "")
	assert.ErrorIs(t, err, llm.ErrThrottled)

	// Nothing was persisted for the failed generation.
	stored, listErr := svc.List(context.Background(), "user-a", "")
	require.NoError(t, listErr)
	assert.Empty(t, stored)
}
