package llm

import (
	"strings"
	"testing"
)

func TestRenderDocuments(t *testing.T) {
	docs := []DocumentInput{
		{Type: "skills", Title: "Go", Content: "5 years"},
		{Type: "values", Title: "Honesty", Content: "tell the truth"},
	}

	rendered := RenderDocuments(docs)
	if !strings.Contains(rendered, "Type: skills\nTitle: Go\nContent: 5 years") {
		t.Fatalf("first document not rendered: %q", rendered)
	}
	if got := strings.Count(rendered, documentDelimiter); got != 1 {
		t.Fatalf("expected 1 delimiter between 2 documents, got %d", got)
	}
}

func TestRenderDocumentsEmpty(t *testing.T) {
	if got := RenderDocuments(nil); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestAnalysisSystemPromptCarriesLanguage(t *testing.T) {
	prompt := AnalysisSystemPrompt("Korean")
	if !strings.Contains(prompt, "Respond in Korean.") {
		t.Fatal("language instruction missing")
	}
	if !strings.Contains(prompt, `"personalityType"`) {
		t.Fatal("schema missing from prompt")
	}
}

func TestResumeSystemPromptTarget(t *testing.T) {
	withTitle := ResumeSystemPrompt("English", "engineering", "Backend Engineer")
	if !strings.Contains(withTitle, "engineering (Backend Engineer)") {
		t.Fatalf("target role missing: %q", withTitle)
	}

	withoutTitle := ResumeSystemPrompt("English", "engineering", "")
	if strings.Contains(withoutTitle, "()") {
		t.Fatal("empty job title should not render parentheses")
	}
}

func TestFallbacksAreSchemaValid(t *testing.T) {
	analysis := FallbackAnalysis()
	if !analysis.Degraded {
		t.Fatal("fallback analysis must be marked degraded")
	}
	if analysis.Strengths == nil || analysis.GrowthAreas == nil || analysis.CoreValues == nil {
		t.Fatal("fallback analysis slices must be non-nil")
	}

	resume := FallbackResume("engineering")
	if !resume.Degraded {
		t.Fatal("fallback resume must be marked degraded")
	}
	if !strings.Contains(resume.Summary, "engineering") {
		t.Fatal("fallback resume should name the job category")
	}
	if resume.Skills == nil || resume.Experience == nil || resume.Achievements == nil {
		t.Fatal("fallback resume slices must be non-nil")
	}
}
