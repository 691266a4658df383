package resumes

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

// ownerIndex is keyed by userId with jobCategory as the sort key, so a
// category filter rides the key condition instead of a filter expression.
const ownerIndex = "userId-jobCategory-index"

// DynamoRepo is the DynamoDB implementation of Repo.
type DynamoRepo struct {
	Client *dynamodb.Client
	Table  string
}

func (r *DynamoRepo) Create(ctx context.Context, resume Resume) error {
	item, err := attributevalue.MarshalMap(resume)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return dynamo.Classify(err)
}

func (r *DynamoRepo) ListByUser(ctx context.Context, userID, jobCategory string) ([]Resume, error) {
	keyCond := expression.Key("userId").Equal(expression.Value(userID))
	if jobCategory != "" {
		keyCond = keyCond.And(expression.Key("jobCategory").Equal(expression.Value(jobCategory)))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
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

	resumes := make([]Resume, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &resumes); err != nil {
		return nil, fmt.Errorf("unmarshal resumes: %w", err)
	}
	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})
	return resumes, nil
}
