package analyses

import (
	"time"

	"resumegen-backend/internal/llm"
)

// Analysis is an append-only personality analysis result. The API never
// updates or deletes one; a user may accumulate many.
type Analysis struct {
	ID        string                `json:"analysisId" dynamodbav:"analysisId"`
	UserID    string                `json:"userId" dynamodbav:"userId"`
	Result    llm.PersonalityResult `json:"result" dynamodbav:"result"`
	CreatedAt time.Time             `json:"createdAt" dynamodbav:"createdAt"`
}
