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

const defaultProjectsTableName = "projects"

type dailyUpdateItem struct {
	ID               string   `dynamodbav:"id"`
	Date             string   `dynamodbav:"date"`
	WorkDone         string   `dynamodbav:"work_done"`
	Photos           []string `dynamodbav:"photos,omitempty"`
	PostedBy         string   `dynamodbav:"posted_by"`
	ApprovalStatus   string   `dynamodbav:"approval_status"`
	ApprovedProgress int      `dynamodbav:"approved_progress"`
	ReviewedBy       string   `dynamodbav:"reviewed_by,omitempty"`
	ApprovedAt       string   `dynamodbav:"approved_at,omitempty"`
	RejectedAt       string   `dynamodbav:"rejected_at,omitempty"`
	RejectionReason  string   `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

type milestoneItem struct {
	ID                 string            `dynamodbav:"id"`
	Title              string            `dynamodbav:"title"`
	Description        string            `dynamodbav:"description,omitempty"`
	Amount             string            `dynamodbav:"amount"`
	StartDate          string            `dynamodbav:"start_date"`
	EndDate            string            `dynamodbav:"end_date"`
	DueDate            string            `dynamodbav:"due_date"`
	Progress           int               `dynamodbav:"progress"`
	Status             string            `dynamodbav:"status"`
	DailyUpdates       []dailyUpdateItem `dynamodbav:"daily_updates"`
	ReleaseRequestedAt string            `dynamodbav:"release_requested_at,omitempty"`
	ReleaseRequestedBy string            `dynamodbav:"release_requested_by,omitempty"`
	ApprovedAt         string            `dynamodbav:"approved_at,omitempty"`
	ApprovedBy         string            `dynamodbav:"approved_by,omitempty"`
	CancelledAt        string            `dynamodbav:"cancelled_at,omitempty"`
	CancellationReason string            `dynamodbav:"cancellation_reason,omitempty"`
	PaymentClaimedAt   string            `dynamodbav:"payment_claimed_at,omitempty"`
	PaymentClaimedBy   string            `dynamodbav:"payment_claimed_by,omitempty"`
	CreatedAt          string            `dynamodbav:"created_at"`
}

type projectItem struct {
	ID                 string          `dynamodbav:"id"`
	EstimateID         string          `dynamodbav:"estimate_id"`
	QuotationID        string          `dynamodbav:"quotation_id"`
	CustomerID         string          `dynamodbav:"customer_id"`
	TypeID             string          `dynamodbav:"type_id"`
	SubcategoryID      string          `dynamodbav:"subcategory_id,omitempty"`
	PackageID          string          `dynamodbav:"package_id,omitempty"`
	Title              string          `dynamodbav:"title"`
	Budget             string          `dynamodbav:"budget"`
	StartDate          string          `dynamodbav:"start_date,omitempty"`
	EndDate            string          `dynamodbav:"end_date,omitempty"`
	AssignedSupervisor string          `dynamodbav:"assigned_supervisor,omitempty"`
	AssignedFreelancer string          `dynamodbav:"assigned_freelancer,omitempty"`
	OverallProgress    int             `dynamodbav:"overall_progress"`
	Milestones         []milestoneItem `dynamodbav:"milestones"`
	CreatedBy          string          `dynamodbav:"created_by"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB. Milestones
// and daily updates are embedded in the project item.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// Update writes the whole project back when the stored version equals
// p.Version and returns it with the incremented version.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	expected := p.Version
	p.Version++
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	cond, names, values := versionCondition(expected)
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       cond,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return entities.Project{}, conditionError(err)
	}
	return p, nil
}

func toProjectItem(p entities.Project) projectItem {
	milestones := make([]milestoneItem, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		updates := make([]dailyUpdateItem, 0, len(m.DailyUpdates))
		for _, u := range m.DailyUpdates {
			updates = append(updates, dailyUpdateItem{
				ID:               u.ID,
				Date:             formatTime(u.Date),
				WorkDone:         u.WorkDone,
				Photos:           u.Photos,
				PostedBy:         u.PostedBy,
				ApprovalStatus:   string(u.ApprovalStatus),
				ApprovedProgress: u.ApprovedProgress,
				ReviewedBy:       u.ReviewedBy,
				ApprovedAt:       formatTimePtr(u.ApprovedAt),
				RejectedAt:       formatTimePtr(u.RejectedAt),
				RejectionReason:  u.RejectionReason,
				CreatedAt:        formatTime(u.CreatedAt),
			})
		}
		milestones = append(milestones, milestoneItem{
			ID:                 m.ID,
			Title:              m.Title,
			Description:        m.Description,
			Amount:             floatToString(m.Amount),
			StartDate:          formatTime(m.StartDate),
			EndDate:            formatTime(m.EndDate),
			DueDate:            formatTime(m.DueDate),
			Progress:           m.Progress,
			Status:             string(m.Status),
			DailyUpdates:       updates,
			ReleaseRequestedAt: formatTimePtr(m.ReleaseRequestedAt),
			ReleaseRequestedBy: m.ReleaseRequestedBy,
			ApprovedAt:         formatTimePtr(m.ApprovedAt),
			ApprovedBy:         m.ApprovedBy,
			CancelledAt:        formatTimePtr(m.CancelledAt),
			CancellationReason: m.CancellationReason,
			PaymentClaimedAt:   formatTimePtr(m.PaymentClaimedAt),
			PaymentClaimedBy:   m.PaymentClaimedBy,
			CreatedAt:          formatTime(m.CreatedAt),
		})
	}

	return projectItem{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		QuotationID:        p.QuotationID,
		CustomerID:         p.CustomerID,
		TypeID:             p.TypeID,
		SubcategoryID:      p.SubcategoryID,
		PackageID:          p.PackageID,
		Title:              p.Title,
		Budget:             floatToString(p.Budget),
		StartDate:          formatTimePtr(p.StartDate),
		EndDate:            formatTimePtr(p.EndDate),
		AssignedSupervisor: p.AssignedSupervisor,
		AssignedFreelancer: p.AssignedFreelancer,
		OverallProgress:    p.OverallProgress,
		Milestones:         milestones,
		CreatedBy:          p.CreatedBy,
		Version:            p.Version,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	milestones := make([]entities.Milestone, 0, len(it.Milestones))
	for _, m := range it.Milestones {
		updates := make([]entities.DailyUpdate, 0, len(m.DailyUpdates))
		for _, u := range m.DailyUpdates {
			updates = append(updates, entities.DailyUpdate{
				ID:               u.ID,
				Date:             parseTime(u.Date),
				WorkDone:         u.WorkDone,
				Photos:           u.Photos,
				PostedBy:         u.PostedBy,
				ApprovalStatus:   entities.ApprovalStatus(u.ApprovalStatus),
				ApprovedProgress: u.ApprovedProgress,
				ReviewedBy:       u.ReviewedBy,
				ApprovedAt:       parseTimePtr(u.ApprovedAt),
				RejectedAt:       parseTimePtr(u.RejectedAt),
				RejectionReason:  u.RejectionReason,
				CreatedAt:        parseTime(u.CreatedAt),
			})
		}
		milestones = append(milestones, entities.Milestone{
			ID:                 m.ID,
			Title:              m.Title,
			Description:        m.Description,
			Amount:             stringToFloat(m.Amount),
			StartDate:          parseTime(m.StartDate),
			EndDate:            parseTime(m.EndDate),
			DueDate:            parseTime(m.DueDate),
			Progress:           m.Progress,
			Status:             entities.MilestoneStatus(m.Status),
			DailyUpdates:       updates,
			ReleaseRequestedAt: parseTimePtr(m.ReleaseRequestedAt),
			ReleaseRequestedBy: m.ReleaseRequestedBy,
			ApprovedAt:         parseTimePtr(m.ApprovedAt),
			ApprovedBy:         m.ApprovedBy,
			CancelledAt:        parseTimePtr(m.CancelledAt),
			CancellationReason: m.CancellationReason,
			PaymentClaimedAt:   parseTimePtr(m.PaymentClaimedAt),
			PaymentClaimedBy:   m.PaymentClaimedBy,
			CreatedAt:          parseTime(m.CreatedAt),
		})
	}

	return entities.Project{
		ID:                 it.ID,
		EstimateID:         it.EstimateID,
		QuotationID:        it.QuotationID,
		CustomerID:         it.CustomerID,
		TypeID:             it.TypeID,
		SubcategoryID:      it.SubcategoryID,
		PackageID:          it.PackageID,
		Title:              it.Title,
		Budget:             stringToFloat(it.Budget),
		StartDate:          parseTimePtr(it.StartDate),
		EndDate:            parseTimePtr(it.EndDate),
		AssignedSupervisor: it.AssignedSupervisor,
		AssignedFreelancer: it.AssignedFreelancer,
		OverallProgress:    it.OverallProgress,
		Milestones:         milestones,
		CreatedBy:          it.CreatedBy,
		Version:            it.Version,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
