package analyses

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"resumegen-backend/internal/shared/storage/dynamo"
)

const ownerIndex = "userId-index"

// DynamoRepo is the DynamoDB implementation of Repo.
type DynamoRepo struct {
	Client *dynamodb.Client
	Table  string
}

func (r *DynamoRepo) Create(ctx context.Context, analysis Analysis) error {
	item, err := attributevalue.MarshalMap(analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return dynamo.Classify(err)
}

func (r *DynamoRepo) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("userId").Equal(expression.Value(userID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build query expression: %w", err)
	}
	out, err := r.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.Table),
		IndexName:                 aws.String(ownerIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, dynamo.Classify(err)
	}

	analyses := make([]Analysis, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &analyses); err != nil {
		return nil, fmt.Errorf("unmarshal analyses: %w", err)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	return analyses, nil
}
