package repository

import (
	"context"
	"fmt"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type questionOptionItem struct {
	Title        string  `dynamodbav:"title"`
	Value        float64 `dynamodbav:"value"`
	ValueSubType string  `dynamodbav:"value_sub_type,omitempty"`
}

type answeredQuestionItem struct {
	QuestionID        string              `dynamodbav:"question_id"`
	Title             string              `dynamodbav:"title"`
	Type              string              `dynamodbav:"type"`
	AreaQuestion      bool                `dynamodbav:"area_question"`
	IncludeInEstimate bool                `dynamodbav:"include_in_estimate"`
	AreaValue         float64             `dynamodbav:"area_value"`
	SelectedOption    *questionOptionItem `dynamodbav:"selected_option,omitempty"`
	CalculatedAmount  string              `dynamodbav:"calculated_amount"`
}

type freelancerQuotationItem struct {
	FreelancerID string `dynamodbav:"freelancer_id"`
	QuotationID  string `dynamodbav:"quotation_id"`
	SubmittedAt  string `dynamodbav:"submitted_at"`
}

type customerResponseItem struct {
	Status      string `dynamodbav:"status"`
	Reason      string `dynamodbav:"reason,omitempty"`
	RespondedAt string `dynamodbav:"responded_at"`
}

type estimateItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	TypeID        string `dynamodbav:"type_id"`
	SubcategoryID string `dynamodbav:"subcategory_id,omitempty"`
	PackageID     string `dynamodbav:"package_id,omitempty"`
	AreaSqft      string `dynamodbav:"area_sqft"`

	Questions       []answeredQuestionItem `dynamodbav:"questions"`
	EstimatedAmount string                 `dynamodbav:"estimated_amount"`

	Status             string `dynamodbav:"status"`
	SupervisorProgress string `dynamodbav:"supervisor_progress"`
	CustomerProgress   string `dynamodbav:"customer_progress"`

	AssignedSupervisor          string                    `dynamodbav:"assigned_supervisor,omitempty"`
	SentToFreelancers           []string                  `dynamodbav:"sent_to_freelancers,omitempty"`
	FreelancerQuotations        []freelancerQuotationItem `dynamodbav:"freelancer_quotations,omitempty"`
	FreelancerSelectedQuotation string                    `dynamodbav:"freelancer_selected_quotation,omitempty"`
	FinalQuotation              string                    `dynamodbav:"final_quotation,omitempty"`
	AdminFinalQuotation         string                    `dynamodbav:"admin_final_quotation,omitempty"`
	CustomerResponse            *customerResponseItem     `dynamodbav:"customer_response,omitempty"`
	CancellationReason          string                    `dynamodbav:"cancellation_reason,omitempty"`
	ProjectReference            string                    `dynamodbav:"project_reference,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is conditional on the stored version. Transitions that also
// create or change quotations or a project go through Commit, which writes
// all items in one TransactWriteItems call.
type EstimateDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotationsTable string
	projectsTable   string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, estimatesTable, quotationsTable, projectsTable string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:             ddb,
		tableName:       tableOrDefault(estimatesTable, defaultEstimatesTableName),
		quotationsTable: tableOrDefault(quotationsTable, defaultQuotationsTableName),
		projectsTable:   tableOrDefault(projectsTable, defaultProjectsTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	cond, names := createCondition()
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      cond,
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return entities.Estimate{}, conditionError(err)
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// Update replaces the estimate when the stored version equals e.Version and
// returns it with the incremented version.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	put, next, err := r.versionedEstimatePut(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		return entities.Estimate{}, conditionError(err)
	}
	return next, nil
}

// Commit writes the estimate together with the quotations and project of the
// same transition. Either every item is written or none is.
func (r *EstimateDynamoRepository) Commit(ctx context.Context, t interfaces.EstimateTransition) (entities.Estimate, error) {
	put, next, err := r.versionedEstimatePut(t.Estimate)
	if err != nil {
		return entities.Estimate{}, err
	}
	items := []types.TransactWriteItem{{Put: put}}

	if t.NewQuotation != nil {
		av, err := attributevalue.MarshalMap(toQuotationItem(*t.NewQuotation))
		if err != nil {
			return entities.Estimate{}, err
		}
		cond, names := createCondition()
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.quotationsTable),
			Item:                     av,
			ConditionExpression:      cond,
			ExpressionAttributeNames: names,
		}})
	}

	for _, q := range t.UpdatedQuotations {
		expected := q.Version
		q.Version++
		av, err := attributevalue.MarshalMap(toQuotationItem(q))
		if err != nil {
			return entities.Estimate{}, err
		}
		cond, names, values := versionCondition(expected)
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                 aws.String(r.quotationsTable),
			Item:                      av,
			ConditionExpression:       cond,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}})
	}

	if t.NewProject != nil {
		av, err := attributevalue.MarshalMap(toProjectItem(*t.NewProject))
		if err != nil {
			return entities.Estimate{}, err
		}
		cond, names := createCondition()
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.projectsTable),
			Item:                     av,
			ConditionExpression:      cond,
			ExpressionAttributeNames: names,
		}})
	}

	if len(items) > maxTransactItems {
		return entities.Estimate{}, fmt.Errorf("transition touches %d items, limit is %d", len(items), maxTransactItems)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Estimate{}, transactionError(err)
	}
	return next, nil
}

const maxTransactItems = 100

func (r *EstimateDynamoRepository) versionedEstimatePut(e entities.Estimate) (*types.Put, entities.Estimate, error) {
	expected := e.Version
	e.Version++
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return nil, entities.Estimate{}, err
	}
	cond, names, values := versionCondition(expected)
	return &types.Put{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       cond,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	questions := make([]answeredQuestionItem, 0, len(e.Questions))
	for _, q := range e.Questions {
		it := answeredQuestionItem{
			QuestionID:        q.QuestionID,
			Title:             q.Title,
			Type:              q.Type,
			AreaQuestion:      q.AreaQuestion,
			IncludeInEstimate: q.IncludeInEstimate,
			AreaValue:         q.AreaValue,
			CalculatedAmount:  floatToString(q.CalculatedAmount),
		}
		if q.SelectedOption != nil {
			it.SelectedOption = &questionOptionItem{
				Title:        q.SelectedOption.Title,
				Value:        q.SelectedOption.Value,
				ValueSubType: q.SelectedOption.ValueSubType,
			}
		}
		questions = append(questions, it)
	}

	refs := make([]freelancerQuotationItem, 0, len(e.FreelancerQuotations))
	for _, ref := range e.FreelancerQuotations {
		refs = append(refs, freelancerQuotationItem{
			FreelancerID: ref.FreelancerID,
			QuotationID:  ref.QuotationID,
			SubmittedAt:  formatTime(ref.SubmittedAt),
		})
	}

	var response *customerResponseItem
	if e.CustomerResponse != nil {
		response = &customerResponseItem{
			Status:      string(e.CustomerResponse.Status),
			Reason:      e.CustomerResponse.Reason,
			RespondedAt: formatTime(e.CustomerResponse.RespondedAt),
		}
	}

	return estimateItem{
		ID:                          e.ID,
		CustomerID:                  e.CustomerID,
		TypeID:                      e.TypeID,
		SubcategoryID:               e.SubcategoryID,
		PackageID:                   e.PackageID,
		AreaSqft:                    floatToString(e.AreaSqft),
		Questions:                   questions,
		EstimatedAmount:             floatToString(e.EstimatedAmount),
		Status:                      string(e.Status),
		SupervisorProgress:          string(e.SupervisorProgress),
		CustomerProgress:            string(e.CustomerProgress),
		AssignedSupervisor:          e.AssignedSupervisor,
		SentToFreelancers:           e.SentToFreelancers,
		FreelancerQuotations:        refs,
		FreelancerSelectedQuotation: e.FreelancerSelectedQuotation,
		FinalQuotation:              e.FinalQuotation,
		AdminFinalQuotation:         e.AdminFinalQuotation,
		CustomerResponse:            response,
		CancellationReason:          e.CancellationReason,
		ProjectReference:            e.ProjectReference,
		Version:                     e.Version,
		CreatedAt:                   formatTime(e.CreatedAt),
		UpdatedAt:                   formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	questions := make([]entities.AnsweredQuestion, 0, len(it.Questions))
	for _, q := range it.Questions {
		aq := entities.AnsweredQuestion{
			QuestionID:        q.QuestionID,
			Title:             q.Title,
			Type:              q.Type,
			AreaQuestion:      q.AreaQuestion,
			IncludeInEstimate: q.IncludeInEstimate,
			AreaValue:         q.AreaValue,
			CalculatedAmount:  stringToFloat(q.CalculatedAmount),
		}
		if q.SelectedOption != nil {
			aq.SelectedOption = &entities.QuestionOption{
				Title:        q.SelectedOption.Title,
				Value:        q.SelectedOption.Value,
				ValueSubType: q.SelectedOption.ValueSubType,
			}
		}
		questions = append(questions, aq)
	}

	var refs []entities.FreelancerQuotationRef
	for _, ref := range it.FreelancerQuotations {
		refs = append(refs, entities.FreelancerQuotationRef{
			FreelancerID: ref.FreelancerID,
			QuotationID:  ref.QuotationID,
			SubmittedAt:  parseTime(ref.SubmittedAt),
		})
	}

	var response *entities.CustomerResponse
	if it.CustomerResponse != nil {
		response = &entities.CustomerResponse{
			Status:      entities.CustomerResponseStatus(it.CustomerResponse.Status),
			Reason:      it.CustomerResponse.Reason,
			RespondedAt: parseTime(it.CustomerResponse.RespondedAt),
		}
	}

	return entities.Estimate{
		ID:                          it.ID,
		CustomerID:                  it.CustomerID,
		TypeID:                      it.TypeID,
		SubcategoryID:               it.SubcategoryID,
		PackageID:                   it.PackageID,
		AreaSqft:                    stringToFloat(it.AreaSqft),
		Questions:                   questions,
		EstimatedAmount:             stringToFloat(it.EstimatedAmount),
		Status:                      entities.EstimateStatus(it.Status),
		SupervisorProgress:          entities.SupervisorProgress(it.SupervisorProgress),
		CustomerProgress:            entities.CustomerProgress(it.CustomerProgress),
		AssignedSupervisor:          it.AssignedSupervisor,
		SentToFreelancers:           it.SentToFreelancers,
		FreelancerQuotations:        refs,
		FreelancerSelectedQuotation: it.FreelancerSelectedQuotation,
		FinalQuotation:              it.FinalQuotation,
		AdminFinalQuotation:         it.AdminFinalQuotation,
		CustomerResponse:            response,
		CancellationReason:          it.CancellationReason,
		ProjectReference:            it.ProjectReference,
		Version:                     it.Version,
		CreatedAt:                   parseTime(it.CreatedAt),
		UpdatedAt:                   parseTime(it.UpdatedAt),
	}
}
