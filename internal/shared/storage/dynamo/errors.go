package dynamo

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrConditionFailed signals a conditional write whose condition did not hold.
	ErrConditionFailed = errors.New("condition failed")
	// ErrThrottled signals provisioned-throughput or request-rate throttling.
	ErrThrottled = errors.New("storage throttled")
)

// Classify maps a DynamoDB SDK error onto the storage error taxonomy.
// Unrecognized errors pass through unchanged and surface as a generic 500.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrConditionFailed
	}
	var tputErr *types.ProvisionedThroughputExceededException
	if errors.As(err, &tputErr) {
		return ErrThrottled
	}
	var limitErr *types.RequestLimitExceeded
	if errors.As(err, &limitErr) {
		return ErrThrottled
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "ProvisionedThroughputExceededException", "RequestLimitExceeded":
			return ErrThrottled
		case "ConditionalCheckFailedException":
			return ErrConditionFailed
		}
	}

	return err
}
