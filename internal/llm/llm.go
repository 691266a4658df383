package llm

import (
	"context"
	"errors"
)

var (
	// ErrGenerationUnavailable signals a failed oracle invocation
	// (network or service error). There is no meaningful fallback content
	// at that layer, so it surfaces to the caller.
	ErrGenerationUnavailable = errors.New("generation unavailable")
	// ErrThrottled signals rate limiting by the oracle.
	ErrThrottled = errors.New("generation throttled")
)

// DocumentInput is one source document rendered into the prompt.
type DocumentInput struct {
	Type    string
	Title   string
	Content string
}

// Client abstracts the text-generation oracle. Both operations are total for
// any non-empty document list: malformed oracle output yields the degraded
// fallback result, never an error.
type Client interface {
	GenerateAnalysis(ctx context.Context, docs []DocumentInput) (PersonalityResult, error)
	GenerateResume(ctx context.Context, docs []DocumentInput, jobCategory, jobTitle string) (ResumeResult, error)
}

// PersonalityType names and describes the inferred personality.
type PersonalityType struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Trait is a strength or growth area backed by evidence from the documents.
type Trait struct {
	Name     string `json:"name"`
	Evidence string `json:"evidence"`
}

// PersonalityResult is the structured outcome of a personality analysis.
type PersonalityResult struct {
	PersonalityType PersonalityType `json:"personalityType"`
	Strengths       []Trait         `json:"strengths"`
	GrowthAreas     []Trait         `json:"growthAreas"`
	CoreValues      []string        `json:"coreValues"`
	Summary         string          `json:"summary"`
	Degraded        bool            `json:"degraded,omitempty"`
}

// ExperienceEntry is one highlighted experience in a generated resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResumeResult is the structured content of a generated resume.
type ResumeResult struct {
	Headline     string            `json:"headline"`
	Summary      string            `json:"summary"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Achievements []string          `json:"achievements"`
	Degraded     bool              `json:"degraded,omitempty"`
}

// UnavailableClient is wired when no API key is configured; every call
// reports ErrGenerationUnavailable.
type UnavailableClient struct{}

func (UnavailableClient) GenerateAnalysis(ctx context.Context, docs []DocumentInput) (PersonalityResult, error) {
	_ = ctx
	_ = docs
	return PersonalityResult{}, ErrGenerationUnavailable
}

func (UnavailableClient) GenerateResume(ctx context.Context, docs []DocumentInput, jobCategory, jobTitle string) (ResumeResult, error) {
	_ = ctx
	_ = docs
	_ = jobCategory
	_ = jobTitle
	return ResumeResult{}, ErrGenerationUnavailable
}
