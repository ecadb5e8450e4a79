package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionError(t *testing.T) {
	t.Run("failed condition is a version conflict", func(t *testing.T) {
		err := fmt.Errorf("put item: %w", &types.ConditionalCheckFailedException{Message: aws.String("failed")})
		assert.ErrorIs(t, conditionError(err), interfaces.ErrVersionConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		assert.Equal(t, boom, conditionError(boom))
	})
}

func TestTransactionError(t *testing.T) {
	t.Run("conditional cancellation is a version conflict", func(t *testing.T) {
		err := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		assert.ErrorIs(t, transactionError(err), interfaces.ErrVersionConflict)
	})

	t.Run("throttled cancellation is returned as is", func(t *testing.T) {
		err := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}
		got := transactionError(err)
		assert.NotErrorIs(t, got, interfaces.ErrVersionConflict)
	})
}

func TestUniqueKeys(t *testing.T) {
	keys := uniqueKeys([]string{"fl-1", "", "fl-2", "fl-1"})
	require.Len(t, keys, 2)
	assert.Equal(t, "fl-1", keys[0]["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "fl-2", keys[1]["id"].(*types.AttributeValueMemberS).Value)
}

func TestProjectItemKeepsOptionalDates(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	approved := time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	p := entities.Project{
		ID:        "prj-1",
		Budget:    1234.5,
		StartDate: &start,
		Milestones: []entities.Milestone{{
			ID:     "ms-1",
			Amount: 500,
			Status: entities.MilestoneStatusInProgress,
			DailyUpdates: []entities.DailyUpdate{{
				ID:               "du-1",
				Date:             start,
				ApprovalStatus:   entities.ApprovalStatusApproved,
				ApprovedProgress: 40,
				ApprovedAt:       &approved,
			}},
		}},
		Version: 3,
	}

	got := fromProjectItem(toProjectItem(p))

	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(start))
	assert.Nil(t, got.EndDate)
	assert.Equal(t, 1234.5, got.Budget)
	require.Len(t, got.Milestones, 1)
	assert.Nil(t, got.Milestones[0].ReleaseRequestedAt)
	require.NotNil(t, got.Milestones[0].DailyUpdates[0].ApprovedAt)
	assert.True(t, got.Milestones[0].DailyUpdates[0].ApprovedAt.Equal(approved))
	assert.Nil(t, got.Milestones[0].DailyUpdates[0].RejectedAt)
}
