package documents

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"resumegen-backend/internal/shared/storage/dynamo"
)

// ownerIndex is the GSI keyed by userId backing collection reads.
const ownerIndex = "userId-index"

// DynamoRepo is the DynamoDB implementation of Repo.
type DynamoRepo struct {
	Client *dynamodb.Client
	Table  string
}

func (r *DynamoRepo) Create(ctx context.Context, doc Document) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return dynamo.Classify(err)
}

func (r *DynamoRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"documentId": documentID})
	if err != nil {
		return Document{}, fmt.Errorf("marshal key: %w", err)
	}
	out, err := r.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.Table),
		Key:       key,
	})
	if err != nil {
		return Document{}, dynamo.Classify(err)
	}
	if out.Item == nil {
		return Document{}, ErrNotFound
	}
	var doc Document
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

func (r *DynamoRepo) ListByUser(ctx context.Context, userID, docType string) ([]Document, error) {
	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key("userId").Equal(expression.Value(userID)))
	if docType != "" {
		builder = builder.WithFilter(expression.Name("type").Equal(expression.Value(docType)))
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build query expression: %w", err)
	}

	docs := make([]Document, 0)
	var lastKey map[string]ddbtypes.AttributeValue
	for {
		out, err := r.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.Table),
			IndexName:                 aws.String(ownerIndex),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, dynamo.Classify(err)
		}
		var page []Document
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal documents: %w", err)
		}
		docs = append(docs, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

func (r *DynamoRepo) Update(ctx context.Context, doc Document) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return dynamo.Classify(err)
}

func (r *DynamoRepo) UpdateIfVersion(ctx context.Context, doc Document, expected int64) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	cond := expression.Name("version").Equal(expression.Value(expected))
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
	if err = dynamo.Classify(err); err != nil {
		if errors.Is(err, dynamo.ErrConditionFailed) {
			return errVersionMismatch
		}
		return err
	}
	return nil
}

func (r *DynamoRepo) Delete(ctx context.Context, documentID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"documentId": documentID})
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}
	_, err = r.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.Table),
		Key:       key,
	})
	return dynamo.Classify(err)
}
