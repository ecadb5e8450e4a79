package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
)

// Commands are normalized before any domain logic runs: defaults are filled in
// and every violation is reported at once through a ValidationError.

// CustomerInput identifies the requester of a service request.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// SubmitEstimateCommand is a customer's service request.
type SubmitEstimateCommand struct {
	Customer      CustomerInput
	TypeID        string
	SubcategoryID string
	PackageID     string
	Questions     []entities.AnsweredQuestion
}

func (c *SubmitEstimateCommand) normalize() error {
	verr := &domainerr.ValidationError{}
	c.Customer.Name = strings.TrimSpace(c.Customer.Name)
	c.Customer.Email = strings.ToLower(strings.TrimSpace(c.Customer.Email))
	c.Customer.Phone = strings.TrimSpace(c.Customer.Phone)
	c.TypeID = strings.TrimSpace(c.TypeID)
	c.SubcategoryID = strings.TrimSpace(c.SubcategoryID)
	c.PackageID = strings.TrimSpace(c.PackageID)

	if c.Customer.Email == "" {
		verr.Add("customer.email", "is required")
	} else if _, err := mail.ParseAddress(c.Customer.Email); err != nil {
		verr.Add("customer.email", "is not a valid email address")
	}
	if c.TypeID == "" {
		verr.Add("type_id", "is required")
	}
	if len(c.Questions) == 0 {
		verr.Add("questions", "at least one answered question is required")
	}
	for i := range c.Questions {
		q := &c.Questions[i]
		q.Type = strings.ToLower(strings.TrimSpace(q.Type))
		if q.Type == entities.QuestionTypeArea {
			q.AreaQuestion = true
		}
		if q.AreaQuestion {
			q.Type = entities.QuestionTypeArea
		}
	}
	return verr.Err()
}

// QuotationProposal carries the money inputs of a quotation. A nil Price means
// "derive from the quotation being built upon".
type QuotationProposal struct {
	Price           *float64
	DiscountPercent float64
	MarginType      entities.MarginType
	MarginPercent   float64
	MarginAmount    float64
	EstimatedDays   int
	Notes           string
	Attachments     []string
}

func (p *QuotationProposal) normalize(requirePrice, allowMargin bool) error {
	verr := &domainerr.ValidationError{}
	if requirePrice && p.Price == nil {
		verr.Add("price", "is required")
	}
	if p.Price != nil && *p.Price < 0 {
		verr.Add("price", "must not be negative")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		verr.Add("discount_percent", "must be between 0 and 100")
	}
	if p.EstimatedDays < 0 {
		verr.Add("estimated_days", "must not be negative")
	}

	p.MarginType = entities.MarginType(strings.ToLower(strings.TrimSpace(string(p.MarginType))))
	if allowMargin {
		if p.MarginType == "" {
			p.MarginType = entities.MarginTypePercentage
		}
		switch p.MarginType {
		case entities.MarginTypePercentage:
			if p.MarginPercent < 0 || p.MarginPercent > 100 {
				verr.Add("margin_percent", "must be between 0 and 100")
			}
		case entities.MarginTypeAmount:
			if p.MarginAmount < 0 {
				verr.Add("margin_amount", "must not be negative")
			}
		default:
			verr.Addf("margin_type", "must be %q or %q", entities.MarginTypePercentage, entities.MarginTypeAmount)
		}
	} else if p.MarginType != "" || p.MarginPercent != 0 || p.MarginAmount != 0 {
		verr.Add("margin_type", "margins are not allowed on this quotation")
	}

	p.Notes = strings.TrimSpace(p.Notes)
	p.Attachments = normalizeRefs(p.Attachments, "attachments", verr)
	return verr.Err()
}

// FinalQuotationCommand is the supervisor's final quotation built on a chosen
// freelancer submission.
type FinalQuotationCommand struct {
	ChosenQuotationID string
	Proposal          QuotationProposal
}

func (c *FinalQuotationCommand) normalize() error {
	verr := &domainerr.ValidationError{}
	c.ChosenQuotationID = strings.TrimSpace(c.ChosenQuotationID)
	if c.ChosenQuotationID == "" {
		verr.Add("chosen_quotation_id", "is required")
	}
	if err := c.Proposal.normalize(false, true); err != nil {
		verr.Merge("", asValidation(err))
	}
	return verr.Err()
}

// CustomerResponseCommand is the customer's verdict on the approved quotation.
type CustomerResponseCommand struct {
	Status entities.CustomerResponseStatus
	Reason string
}

func (c *CustomerResponseCommand) normalize() error {
	verr := &domainerr.ValidationError{}
	c.Status = entities.CustomerResponseStatus(strings.ToLower(strings.TrimSpace(string(c.Status))))
	c.Reason = strings.TrimSpace(c.Reason)
	switch c.Status {
	case entities.CustomerResponseAccepted, entities.CustomerResponseRejected:
	default:
		verr.Addf("status", "must be %q or %q", entities.CustomerResponseAccepted, entities.CustomerResponseRejected)
	}
	return verr.Err()
}

// ConvertToDealCommand carries optional project data for deal conversion.
type ConvertToDealCommand struct {
	Title     string
	StartDate *time.Time
	EndDate   *time.Time
}

func (c *ConvertToDealCommand) normalize() error {
	verr := &domainerr.ValidationError{}
	c.Title = strings.TrimSpace(c.Title)
	if c.StartDate != nil && c.EndDate != nil && !c.StartDate.Before(*c.EndDate) {
		verr.Add("end_date", "must be after start_date")
	}
	return verr.Err()
}

// MilestoneSpec describes a milestone to append to a project.
type MilestoneSpec struct {
	Title       string
	Description string
	Amount      float64
	StartDate   time.Time
	EndDate     time.Time
	DueDate     *time.Time
}

// normalize defaults DueDate to EndDate and validates the dates against the
// project range.
func (s *MilestoneSpec) normalize(p entities.Project) error {
	verr := &domainerr.ValidationError{}
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	if s.Title == "" {
		verr.Add("title", "is required")
	}
	if s.Amount < 0 {
		verr.Add("amount", "must not be negative")
	}
	if s.StartDate.IsZero() {
		verr.Add("start_date", "is required")
	}
	if s.EndDate.IsZero() {
		verr.Add("end_date", "is required")
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && !s.StartDate.Before(s.EndDate) {
		verr.Add("end_date", "must be after start_date")
	}
	if s.DueDate == nil && !s.EndDate.IsZero() {
		due := s.EndDate
		s.DueDate = &due
	}
	bounded := []struct {
		field string
		t     *time.Time
	}{{"start_date", &s.StartDate}, {"end_date", &s.EndDate}, {"due_date", s.DueDate}}
	for _, b := range bounded {
		if b.t == nil || b.t.IsZero() {
			continue
		}
		if !p.WithinBounds(*b.t) {
			verr.Add(b.field, "must lie within the project date range")
		}
	}
	return verr.Err()
}

// DailyUpdateCommand is a freelancer's report of work done.
type DailyUpdateCommand struct {
	Date     *time.Time
	WorkDone string
	Photos   []string
}

func (c *DailyUpdateCommand) normalize(now time.Time) error {
	verr := &domainerr.ValidationError{}
	c.WorkDone = strings.TrimSpace(c.WorkDone)
	if c.WorkDone == "" {
		verr.Add("work_done", "is required")
	}
	if c.Date == nil || c.Date.IsZero() {
		d := now
		c.Date = &d
	}
	c.Photos = normalizeRefs(c.Photos, "photos", verr)
	return verr.Err()
}

// normalizeRefs trims and de-duplicates object storage keys.
func normalizeRefs(refs []string, field string, verr *domainerr.ValidationError) []string {
	if len(refs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(refs))
	out := make([]string, 0, len(refs))
	for i, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			verr.Add(fmt.Sprintf("%s[%d]", field, i), "must not be empty")
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
