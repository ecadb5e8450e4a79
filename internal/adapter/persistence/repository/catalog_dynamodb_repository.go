package repository

import (
	"context"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceTypesTableName = "service_types"

type subcategoryItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Active bool   `dynamodbav:"active"`
}

type serviceTypeItem struct {
	ID                      string            `dynamodbav:"id"`
	Name                    string            `dynamodbav:"name"`
	BaseEstimationValueUnit string            `dynamodbav:"base_estimation_value_unit"`
	Subcategories           []subcategoryItem `dynamodbav:"subcategories,omitempty"`
	Packages                []string          `dynamodbav:"packages,omitempty"`
	Active                  bool              `dynamodbav:"active"`
}

// CatalogDynamoRepository reads the service type catalog, which is maintained
// outside this service.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServiceTypesTableName),
	}
}

func (r *CatalogDynamoRepository) GetServiceType(ctx context.Context, id string) (entities.ServiceType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceType{}, nil
	}

	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceType{}, err
	}
	return fromServiceTypeItem(it), nil
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceType {
	subs := make([]entities.Subcategory, 0, len(it.Subcategories))
	for _, s := range it.Subcategories {
		subs = append(subs, entities.Subcategory{ID: s.ID, Name: s.Name, Active: s.Active})
	}
	return entities.ServiceType{
		ID:                      it.ID,
		Name:                    it.Name,
		BaseEstimationValueUnit: stringToFloat(it.BaseEstimationValueUnit),
		Subcategories:           subs,
		Packages:                it.Packages,
		Active:                  it.Active,
	}
}
