package users

import "time"

// User is a registered account. The id is a generated opaque identifier;
// email is a unique lookup attribute.
type User struct {
	ID           string    `json:"userId" dynamodbav:"userId"`
	Email        string    `json:"email" dynamodbav:"email"`
	Name         string    `json:"name" dynamodbav:"name"`
	PasswordHash string    `json:"-" dynamodbav:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}
