package resumes

import (
	"time"

	"resumegen-backend/internal/llm"
)

// Resume is an append-only generated resume, queryable by owner and job
// category.
type Resume struct {
	ID          string           `json:"resumeId" dynamodbav:"resumeId"`
	UserID      string           `json:"userId" dynamodbav:"userId"`
	JobCategory string           `json:"jobCategory" dynamodbav:"jobCategory"`
	JobTitle    string           `json:"jobTitle,omitempty" dynamodbav:"jobTitle,omitempty"`
	Content     llm.ResumeResult `json:"content" dynamodbav:"content"`
	CreatedAt   time.Time        `json:"createdAt" dynamodbav:"createdAt"`
}
