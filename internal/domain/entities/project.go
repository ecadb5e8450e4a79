package entities

import (
	"math"
	"sort"
	"time"
)

// MilestoneStatus follows pending -> in_progress -> release_requested -> approved,
// with cancelled as a terminal off-ramp. submitted is accepted as a legacy
// pre-release state.
type MilestoneStatus string

const (
	MilestoneStatusPending          MilestoneStatus = "pending"
	MilestoneStatusInProgress       MilestoneStatus = "in_progress"
	MilestoneStatusSubmitted        MilestoneStatus = "submitted"
	MilestoneStatusReleaseRequested MilestoneStatus = "release_requested"
	MilestoneStatusApproved         MilestoneStatus = "approved"
	MilestoneStatusCancelled        MilestoneStatus = "cancelled"
)

// AcceptsDailyUpdates reports whether work can still be logged against the milestone.
func (s MilestoneStatus) AcceptsDailyUpdates() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusSubmitted:
		return true
	}
	return false
}

// CanRequestRelease reports whether the status allows a release request.
func (s MilestoneStatus) CanRequestRelease() bool {
	switch s {
	case MilestoneStatusInProgress, MilestoneStatusSubmitted, MilestoneStatusPending:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// DailyUpdate is a freelancer's dated claim of work performed on a milestone.
type DailyUpdate struct {
	ID               string         `json:"id"`
	Date             time.Time      `json:"date"`
	WorkDone         string         `json:"work_done"`
	Photos           []string       `json:"photos,omitempty"`
	PostedBy         string         `json:"posted_by"`
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	ApprovedProgress int            `json:"approved_progress"`
	ReviewedBy       string         `json:"reviewed_by,omitempty"`
	ApprovedAt       *time.Time     `json:"approved_at,omitempty"`
	RejectedAt       *time.Time     `json:"rejected_at,omitempty"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Milestone is one payment tranche embedded in a Project.
type Milestone struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Amount             float64         `json:"amount"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	DueDate            time.Time       `json:"due_date"`
	Progress           int             `json:"progress"`
	Status             MilestoneStatus `json:"status"`
	DailyUpdates       []DailyUpdate   `json:"daily_updates"`
	ReleaseRequestedAt *time.Time      `json:"release_requested_at,omitempty"`
	ReleaseRequestedBy string          `json:"release_requested_by,omitempty"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy         string          `json:"approved_by,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	PaymentClaimedAt   *time.Time      `json:"payment_claimed_at,omitempty"`
	PaymentClaimedBy   string          `json:"payment_claimed_by,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// PaymentClaimed reports whether a payment attempt holds the milestone and has
// not yet expired at now.
func (m Milestone) PaymentClaimed(now time.Time, ttl time.Duration) bool {
	return m.PaymentClaimedAt != nil && now.Before(m.PaymentClaimedAt.Add(ttl))
}

// DailyUpdate returns a pointer into the milestone's update list.
func (m *Milestone) DailyUpdate(id string) *DailyUpdate {
	for i := range m.DailyUpdates {
		if m.DailyUpdates[i].ID == id {
			return &m.DailyUpdates[i]
		}
	}
	return nil
}

// RecomputeProgress resets Progress from the full update history.
func (m *Milestone) RecomputeProgress() {
	m.Progress = LatestApprovedProgress(m.DailyUpdates)
}

// ApplyReview recomputes progress after a daily update was approved or rejected.
// A release request is only valid at 100%, so a drop below that withdraws it.
func (m *Milestone) ApplyReview() {
	m.RecomputeProgress()
	if m.Status == MilestoneStatusReleaseRequested && m.Progress < 100 {
		m.Status = MilestoneStatusInProgress
		m.ReleaseRequestedAt = nil
		m.ReleaseRequestedBy = ""
	}
}

// LatestApprovedProgress returns the approved_progress of the approved update with
// the latest business date, clamped to [0,100], or 0 when nothing is approved.
// Updates may be backdated, so insertion order is irrelevant; equal dates are
// ordered by creation time and then by id, so the result does not depend on the
// order in which the updates were reviewed.
func LatestApprovedProgress(updates []DailyUpdate) int {
	approved := make([]DailyUpdate, 0, len(updates))
	for _, u := range updates {
		if u.ApprovalStatus == ApprovalStatusApproved {
			approved = append(approved, u)
		}
	}
	if len(approved) == 0 {
		return 0
	}

	sort.SliceStable(approved, func(i, j int) bool {
		a, b := approved[i], approved[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return clampProgress(approved[0].ApprovedProgress)
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Project is created only through deal conversion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - milestones and their daily updates are embedded; the whole project is
//     written back as one item guarded by version.
type Project struct {
	ID                 string      `json:"id"`
	EstimateID         string      `json:"estimate_id"`
	QuotationID        string      `json:"quotation_id"`
	CustomerID         string      `json:"customer_id"`
	TypeID             string      `json:"type_id"`
	SubcategoryID      string      `json:"subcategory_id,omitempty"`
	PackageID          string      `json:"package_id,omitempty"`
	Title              string      `json:"title"`
	Budget             float64     `json:"budget"`
	StartDate          *time.Time  `json:"start_date,omitempty"`
	EndDate            *time.Time  `json:"end_date,omitempty"`
	AssignedSupervisor string      `json:"assigned_supervisor,omitempty"`
	AssignedFreelancer string      `json:"assigned_freelancer,omitempty"`
	OverallProgress    int         `json:"overall_progress"`
	Milestones         []Milestone `json:"milestones"`
	CreatedBy          string      `json:"created_by"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Milestone returns a pointer into the project's milestone list.
func (p *Project) Milestone(id string) *Milestone {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return &p.Milestones[i]
		}
	}
	return nil
}

// WithinBounds reports whether t lies inside the project's date range. Unset
// bounds are open.
func (p Project) WithinBounds(t time.Time) bool {
	if p.StartDate != nil && t.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && t.After(*p.EndDate) {
		return false
	}
	return true
}

// RecomputeOverallProgress sets OverallProgress to the share of approved
// milestones among the non-cancelled ones.
func (p *Project) RecomputeOverallProgress() {
	active, approved := 0, 0
	for _, m := range p.Milestones {
		if m.Status == MilestoneStatusCancelled {
			continue
		}
		active++
		if m.Status == MilestoneStatusApproved {
			approved++
		}
	}
	if active == 0 {
		p.OverallProgress = 0
		return
	}
	p.OverallProgress = int(math.Round(100 * float64(approved) / float64(active)))
}
