package repository

import (
	"context"
	"fmt"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFreelancersTableName = "freelancers"
	batchGetLimit               = 100
	batchGetMaxAttempts         = 5
)

type freelancerItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Email  string `dynamodbav:"email"`
	Active bool   `dynamodbav:"active"`
}

// FreelancerDynamoRepository is a read-only view of the freelancers table.
//
// Table requirements:
//   - PK: id (string)
type FreelancerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFreelancerRepository = (*FreelancerDynamoRepository)(nil)

func NewFreelancerDynamoRepository(ddb *dynamodb.Client, tableName string) *FreelancerDynamoRepository {
	return &FreelancerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFreelancersTableName),
	}
}

// GetByIDs loads the given freelancers with BatchGetItem. Unknown ids are
// omitted; duplicates are read once.
func (r *FreelancerDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Freelancer, error) {
	keys := uniqueKeys(ids)
	out := make([]entities.Freelancer, 0, len(keys))

	for start := 0; start < len(keys); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(keys) {
			end = len(keys)
		}
		found, err := r.batchGet(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (r *FreelancerDynamoRepository) batchGet(ctx context.Context, keys []map[string]types.AttributeValue) ([]entities.Freelancer, error) {
	request := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: keys},
	}
	var found []entities.Freelancer

	for attempt := 0; len(request) > 0; attempt++ {
		if attempt == batchGetMaxAttempts {
			return nil, fmt.Errorf("freelancers batch get: unprocessed keys after %d attempts", attempt)
		}
		res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Responses[r.tableName] {
			var it freelancerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			found = append(found, entities.Freelancer{ID: it.ID, Name: it.Name, Email: it.Email, Active: it.Active})
		}
		request = res.UnprocessedKeys
	}
	return found, nil
}

func uniqueKeys(ids []string) []map[string]types.AttributeValue {
	seen := make(map[string]struct{}, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}
	return keys
}
