package llm

// FallbackAnalysis is the schema-valid placeholder returned when the oracle
// answered but its output could not be parsed. Degraded marks the result so
// clients can tell it apart from a real analysis.
func FallbackAnalysis() PersonalityResult {
	return PersonalityResult{
		PersonalityType: PersonalityType{
			Type:        "undetermined",
			Description: "The analysis could not be completed from the generated output. Please try again.",
		},
		Strengths:   []Trait{},
		GrowthAreas: []Trait{},
		CoreValues:  []string{},
		Summary:     "Automatic analysis was unavailable for this request; a placeholder result was returned.",
		Degraded:    true,
	}
}

// FallbackResume is the schema-valid placeholder for an unparseable resume
// generation.
func FallbackResume(jobCategory string) ResumeResult {
	return ResumeResult{
		Headline:     "Resume draft unavailable",
		Summary:      "The resume for the " + jobCategory + " category could not be generated from the model output. Please try again.",
		Skills:       []string{},
		Experience:   []ExperienceEntry{},
		Achievements: []string{},
		Degraded:     true,
	}
}
