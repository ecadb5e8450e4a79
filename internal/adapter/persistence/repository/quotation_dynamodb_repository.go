package repository

import (
	"context"
	"sort"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsEstimateIDIndex  = "estimate_id-index"
)

type quotationItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	CreatedBy  string `dynamodbav:"created_by"`
	Role       string `dynamodbav:"role"`

	Price           string `dynamodbav:"price"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	DiscountAmount  string `dynamodbav:"discount_amount"`
	MarginType      string `dynamodbav:"margin_type,omitempty"`
	MarginPercent   string `dynamodbav:"margin_percent"`
	MarginAmount    string `dynamodbav:"margin_amount"`
	GrandTotal      string `dynamodbav:"grand_total"`

	EstimatedDays int      `dynamodbav:"estimated_days,omitempty"`
	Notes         string   `dynamodbav:"notes,omitempty"`
	Attachments   []string `dynamodbav:"attachments,omitempty"`

	SourceQuotationID      string `dynamodbav:"source_quotation_id,omitempty"`
	IsFinal                bool   `dynamodbav:"is_final"`
	IsSelectedBySupervisor bool   `dynamodbav:"is_selected_by_supervisor"`
	SuperAdminApproved     bool   `dynamodbav:"superadmin_approved"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository reads Quotation entities from DynamoDB. Writes go
// through EstimateDynamoRepository.Commit.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// ListByEstimateID returns the estimate's quotations oldest first.
func (r *QuotationDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Quotation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})

	items := []entities.Quotation{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuotationItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:                     q.ID,
		EstimateID:             q.EstimateID,
		CreatedBy:              q.CreatedBy,
		Role:                   string(q.Role),
		Price:                  floatToString(q.Price),
		DiscountPercent:        floatToString(q.DiscountPercent),
		DiscountAmount:         floatToString(q.DiscountAmount),
		MarginType:             string(q.MarginType),
		MarginPercent:          floatToString(q.MarginPercent),
		MarginAmount:           floatToString(q.MarginAmount),
		GrandTotal:             floatToString(q.GrandTotal),
		EstimatedDays:          q.EstimatedDays,
		Notes:                  q.Notes,
		Attachments:            q.Attachments,
		SourceQuotationID:      q.SourceQuotationID,
		IsFinal:                q.IsFinal,
		IsSelectedBySupervisor: q.IsSelectedBySupervisor,
		SuperAdminApproved:     q.SuperAdminApproved,
		Version:                q.Version,
		CreatedAt:              formatTime(q.CreatedAt),
		UpdatedAt:              formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	return entities.Quotation{
		ID:                     it.ID,
		EstimateID:             it.EstimateID,
		CreatedBy:              it.CreatedBy,
		Role:                   entities.QuotationRole(it.Role),
		Price:                  stringToFloat(it.Price),
		DiscountPercent:        stringToFloat(it.DiscountPercent),
		DiscountAmount:         stringToFloat(it.DiscountAmount),
		MarginType:             entities.MarginType(it.MarginType),
		MarginPercent:          stringToFloat(it.MarginPercent),
		MarginAmount:           stringToFloat(it.MarginAmount),
		GrandTotal:             stringToFloat(it.GrandTotal),
		EstimatedDays:          it.EstimatedDays,
		Notes:                  it.Notes,
		Attachments:            it.Attachments,
		SourceQuotationID:      it.SourceQuotationID,
		IsFinal:                it.IsFinal,
		IsSelectedBySupervisor: it.IsSelectedBySupervisor,
		SuperAdminApproved:     it.SuperAdminApproved,
		Version:                it.Version,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}
