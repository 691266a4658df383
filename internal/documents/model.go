package documents

import "time"

// Document is a free-form record owned by a user. Version starts at 1 and
// increments by exactly 1 on every successful mutation; it is the optimistic
// concurrency token for PATCH.
type Document struct {
	ID        string    `json:"documentId" dynamodbav:"documentId"`
	UserID    string    `json:"userId" dynamodbav:"userId"`
	Type      string    `json:"type" dynamodbav:"type"`
	Title     string    `json:"title" dynamodbav:"title"`
	Content   string    `json:"content" dynamodbav:"content"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}
