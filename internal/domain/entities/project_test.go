package entities

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestLatestApprovedProgress(t *testing.T) {
	t.Run("no approved updates", func(t *testing.T) {
		updates := []DailyUpdate{
			{ID: "a", Date: day(1), ApprovalStatus: ApprovalStatusPending},
			{ID: "b", Date: day(2), ApprovalStatus: ApprovalStatusRejected, ApprovedProgress: 80},
		}
		assert.Equal(t, 0, LatestApprovedProgress(updates))
		assert.Equal(t, 0, LatestApprovedProgress(nil))
	})

	t.Run("latest business date wins over insertion order", func(t *testing.T) {
		updates := []DailyUpdate{
			{ID: "late", Date: day(10), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 40},
			{ID: "backdated", Date: day(3), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 90},
		}
		assert.Equal(t, 40, LatestApprovedProgress(updates))
	})

	t.Run("clamped", func(t *testing.T) {
		updates := []DailyUpdate{{ID: "x", Date: day(1), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 130}}
		assert.Equal(t, 100, LatestApprovedProgress(updates))
	})

	t.Run("same date ties ignore review order", func(t *testing.T) {
		reviewedFirst, reviewedLast := day(8), day(9)
		a := DailyUpdate{ID: "a", Date: day(5), CreatedAt: day(5).Add(9 * time.Hour),
			ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 30}
		b := DailyUpdate{ID: "b", Date: day(5), CreatedAt: day(5).Add(17 * time.Hour),
			ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 70}

		a.ApprovedAt, b.ApprovedAt = &reviewedFirst, &reviewedLast
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{a, b}))
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{b, a}))

		a.ApprovedAt, b.ApprovedAt = &reviewedLast, &reviewedFirst
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{a, b}))
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{b, a}))
	})

	t.Run("same date and creation time fall back to id", func(t *testing.T) {
		a := DailyUpdate{ID: "a", Date: day(5), CreatedAt: day(5), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 30}
		b := DailyUpdate{ID: "b", Date: day(5), CreatedAt: day(5), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 70}
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{a, b}))
		assert.Equal(t, 70, LatestApprovedProgress([]DailyUpdate{b, a}))
	})

	t.Run("independent of order", func(t *testing.T) {
		base := []DailyUpdate{
			{ID: "1", Date: day(1), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 10},
			{ID: "2", Date: day(5), ApprovalStatus: ApprovalStatusRejected, ApprovedProgress: 0},
			{ID: "3", Date: day(4), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 55},
			{ID: "4", Date: day(2), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 70},
			{ID: "5", Date: day(6), ApprovalStatus: ApprovalStatusPending},
		}
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			shuffled := append([]DailyUpdate(nil), base...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			assert.Equal(t, 55, LatestApprovedProgress(shuffled))
		}
	})
}

func TestMilestone_ApplyReview(t *testing.T) {
	requested := day(9)
	newMilestone := func() Milestone {
		return Milestone{
			ID:                 "m1",
			Status:             MilestoneStatusReleaseRequested,
			Progress:           100,
			ReleaseRequestedAt: &requested,
			ReleaseRequestedBy: "fl-1",
			DailyUpdates: []DailyUpdate{
				{ID: "d2", Date: day(9), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 100},
				{ID: "d3", Date: day(10), ApprovalStatus: ApprovalStatusApproved, ApprovedProgress: 50},
			},
		}
	}

	t.Run("drop below 100 withdraws the release request", func(t *testing.T) {
		m := newMilestone()
		m.ApplyReview()
		assert.Equal(t, 50, m.Progress)
		assert.Equal(t, MilestoneStatusInProgress, m.Status)
		assert.Nil(t, m.ReleaseRequestedAt)
		assert.Empty(t, m.ReleaseRequestedBy)
	})

	t.Run("still complete keeps the release request", func(t *testing.T) {
		m := newMilestone()
		m.DailyUpdates[1].ApprovedProgress = 100
		m.ApplyReview()
		assert.Equal(t, 100, m.Progress)
		assert.Equal(t, MilestoneStatusReleaseRequested, m.Status)
		assert.NotNil(t, m.ReleaseRequestedAt)
	})

	t.Run("other statuses untouched", func(t *testing.T) {
		m := newMilestone()
		m.Status = MilestoneStatusSubmitted
		m.ApplyReview()
		assert.Equal(t, 50, m.Progress)
		assert.Equal(t, MilestoneStatusSubmitted, m.Status)
	})
}

func TestProject_RecomputeOverallProgress(t *testing.T) {
	p := Project{Milestones: []Milestone{
		{ID: "m1", Status: MilestoneStatusApproved},
		{ID: "m2", Status: MilestoneStatusInProgress},
		{ID: "m3", Status: MilestoneStatusCancelled},
	}}
	p.RecomputeOverallProgress()
	assert.Equal(t, 50, p.OverallProgress)

	p.Milestones = append(p.Milestones, Milestone{ID: "m4", Status: MilestoneStatusPending})
	p.RecomputeOverallProgress()
	assert.Equal(t, 33, p.OverallProgress)

	empty := Project{Milestones: []Milestone{{Status: MilestoneStatusCancelled}}}
	empty.RecomputeOverallProgress()
	assert.Equal(t, 0, empty.OverallProgress)
}

func TestProject_WithinBounds(t *testing.T) {
	start, end := day(1), day(20)
	p := Project{StartDate: &start, EndDate: &end}
	assert.True(t, p.WithinBounds(day(1)))
	assert.True(t, p.WithinBounds(day(20)))
	assert.False(t, p.WithinBounds(day(21)))
	assert.True(t, Project{}.WithinBounds(day(28)))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(EstimateStatusSubmitted, EstimateStatusAssigned))
	assert.True(t, CanTransition(EstimateStatusSuperAdminApproved, EstimateStatusCancelled))
	assert.True(t, CanTransition(EstimateStatusCustomerAccepted, EstimateStatusDeal))
	assert.False(t, CanTransition(EstimateStatusSubmitted, EstimateStatusDeal))
	assert.False(t, CanTransition(EstimateStatusCustomerRejected, EstimateStatusCustomerAccepted))
	assert.True(t, EstimateStatusDeal.IsTerminal())
	assert.True(t, EstimateStatusCancelled.IsTerminal())
	assert.False(t, EstimateStatusAssigned.IsTerminal())
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleFreelancer.Can(ActionRequestRelease))
	assert.False(t, RoleCustomer.Can(ActionApproveMilestone))
	assert.True(t, RoleSuperAdmin.Can(ActionApproveFinalQuotation))
	assert.False(t, RoleSuperAdmin.Can(ActionSubmitQuotation))
	assert.False(t, Role("guest").Can(ActionViewEstimate))

	r, ok := ParseRole(" Supervisor ")
	assert.True(t, ok)
	assert.Equal(t, RoleSupervisor, r)
	_, ok = ParseRole("admin")
	assert.False(t, ok)
}
