package repository

import (
	"context"
	"encoding/json"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMilestonePaymentsTableName = "milestone_payments"
	paymentsMilestoneIDIndex          = "milestone_id-index"
)

type milestonePaymentItem struct {
	ID                string                 `dynamodbav:"id"`
	ProjectID         string                 `dynamodbav:"project_id"`
	MilestoneID       string                 `dynamodbav:"milestone_id"`
	PaidBy            string                 `dynamodbav:"paid_by"`
	Amount            string                 `dynamodbav:"amount"`
	Date              string                 `dynamodbav:"date"`
	Status            string                 `dynamodbav:"status"`
	GatewayPayload    map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `dynamodbav:"gateway_payload_raw,omitempty"`
}

// MilestonePaymentDynamoRepository persists MilestonePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: milestone_id-index (PK: milestone_id)
type MilestonePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestonePaymentRepository = (*MilestonePaymentDynamoRepository)(nil)

func NewMilestonePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *MilestonePaymentDynamoRepository {
	return &MilestonePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultMilestonePaymentsTableName),
	}
}

func (r *MilestonePaymentDynamoRepository) Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error) {
	av, err := attributevalue.MarshalMap(toMilestonePaymentItem(p))
	if err != nil {
		return entities.MilestonePayment{}, err
	}

	cond, names := createCondition()
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      cond,
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return entities.MilestonePayment{}, conditionError(err)
	}
	return p, nil
}

func (r *MilestonePaymentDynamoRepository) ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.MilestonePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsMilestoneIDIndex),
		KeyConditionExpression: aws.String("milestone_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: milestoneID},
		},
	})

	items := []entities.MilestonePayment{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it milestonePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMilestonePaymentItem(it))
		}
	}
	return items, nil
}

func toMilestonePaymentItem(p entities.MilestonePayment) milestonePaymentItem {
	return milestonePaymentItem{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		MilestoneID:       p.MilestoneID,
		PaidBy:            p.PaidBy,
		Amount:            floatToString(p.Amount),
		Date:              formatTime(p.Date),
		Status:            string(p.Status),
		GatewayPayload:    p.GatewayPayload,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
	}
}

func fromMilestonePaymentItem(it milestonePaymentItem) entities.MilestonePayment {
	var raw json.RawMessage
	if it.GatewayPayloadRaw != "" {
		raw = json.RawMessage(it.GatewayPayloadRaw)
	}
	return entities.MilestonePayment{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		MilestoneID:       it.MilestoneID,
		PaidBy:            it.PaidBy,
		Amount:            stringToFloat(it.Amount),
		Date:              parseTime(it.Date),
		Status:            entities.PaymentStatus(it.Status),
		GatewayPayload:    it.GatewayPayload,
		GatewayPayloadRaw: raw,
	}
}
