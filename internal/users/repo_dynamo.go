package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"resumegen-backend/internal/shared/storage/dynamo"
)

// emailIndex is the GSI keyed by email backing login and uniqueness lookups.
const emailIndex = "email-index"

// DynamoRepo is the DynamoDB implementation of Repo.
type DynamoRepo struct {
	Client *dynamodb.Client
	Table  string
}

// Create rejects duplicate emails via a lookup before the write. The GSI read
// and the put are not atomic; a same-email race ends with two users and the
// older one unreachable through login, which is tolerated.
func (r *DynamoRepo) Create(ctx context.Context, user User) error {
	if _, err := r.GetByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	cond := expression.AttributeNotExists(expression.Name("userId"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("build condition expression: %w", err)
	}
	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.Table),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return dynamo.Classify(err)
}

func (r *DynamoRepo) GetByID(ctx context.Context, userID string) (User, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"userId": userID})
	if err != nil {
		return User{}, fmt.Errorf("marshal key: %w", err)
	}
	out, err := r.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.Table),
		Key:       key,
	})
	if err != nil {
		return User{}, dynamo.Classify(err)
	}
	if out.Item == nil {
		return User{}, ErrNotFound
	}
	var user User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	return user, nil
}

func (r *DynamoRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("email").Equal(expression.Value(email))).
		Build()
	if err != nil {
		return User{}, fmt.Errorf("build query expression: %w", err)
	}
	out, err := r.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.Table),
		IndexName:                 aws.String(emailIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return User{}, dynamo.Classify(err)
	}
	if len(out.Items) == 0 {
		return User{}, ErrNotFound
	}
	var user User
	if err := attributevalue.UnmarshalMap(out.Items[0], &user); err != nil {
		return User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	return user, nil
}
