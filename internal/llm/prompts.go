package llm

import (
	"fmt"
	"strings"
)

const documentDelimiter = "\n---\n"

// RenderDocuments concatenates the caller's documents into a single
// user-turn prompt block.
func RenderDocuments(docs []DocumentInput) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, fmt.Sprintf("Type: %s\nTitle: %s\nContent: %s", doc.Type, doc.Title, doc.Content))
	}
	return strings.Join(parts, documentDelimiter)
}

// AnalysisSystemPrompt instructs the oracle to return only a JSON object
// matching the PersonalityResult schema.
func AnalysisSystemPrompt(language string) string {
	return fmt.Sprintf(`You are a careful personality analyst. You will receive a collection of personal documents (experience, skills, values, achievements, daily records, mood tracking, reflections, test results).

Analyze them and respond with ONLY a JSON object matching this schema, with no markdown fences and no commentary:
{
  "personalityType": {"type": "short label", "description": "one paragraph"},
  "strengths": [{"name": "strength", "evidence": "quote or paraphrase from the documents"}],
  "growthAreas": [{"name": "growth area", "evidence": "quote or paraphrase from the documents"}],
  "coreValues": ["value"],
  "summary": "2-3 sentence overall summary"
}

Rules:
- Cite evidence from the source documents; never fabricate facts.
- If the documents carry too little signal for a field, say so in that field instead of inventing content.
- Respond in %s.`, language)
}

// ResumeSystemPrompt instructs the oracle to return only a JSON object
// matching the ResumeResult schema, tailored to the job category.
func ResumeSystemPrompt(language, jobCategory, jobTitle string) string {
	target := jobCategory
	if jobTitle != "" {
		target = fmt.Sprintf("%s (%s)", jobCategory, jobTitle)
	}
	return fmt.Sprintf(`You are an expert resume writer. You will receive a collection of personal documents. Write a resume tailored to the target role: %s.

Respond with ONLY a JSON object matching this schema, with no markdown fences and no commentary:
{
  "headline": "one-line professional headline",
  "summary": "3-4 sentence professional summary",
  "skills": ["skill"],
  "experience": [{"title": "experience title", "description": "impact-focused description"}],
  "achievements": ["achievement"]
}

Rules:
- Use only facts present in the source documents; never fabricate experience.
- Emphasize what is most relevant to the target role.
- If the documents carry too little signal for a field, say so in that field instead of inventing content.
- Respond in %s.`, target, language)
}
