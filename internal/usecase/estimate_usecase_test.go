package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"
	mock_interfaces "dealflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type estimateDeps struct {
	repo        *mock_interfaces.MockIEstimateRepository
	quotations  *mock_interfaces.MockIQuotationRepository
	customers   *mock_interfaces.MockICustomerRepository
	freelancers *mock_interfaces.MockIFreelancerRepository
	catalog     *mock_interfaces.MockICatalogRepository
	notifier    *mock_interfaces.MockINotifier
}

func newEstimateUseCase(t *testing.T) (*EstimateUseCase, estimateDeps) {
	ctrl := gomock.NewController(t)
	d := estimateDeps{
		repo:        mock_interfaces.NewMockIEstimateRepository(ctrl),
		quotations:  mock_interfaces.NewMockIQuotationRepository(ctrl),
		customers:   mock_interfaces.NewMockICustomerRepository(ctrl),
		freelancers: mock_interfaces.NewMockIFreelancerRepository(ctrl),
		catalog:     mock_interfaces.NewMockICatalogRepository(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewEstimateUseCase(d.repo, d.quotations, d.customers, d.freelancers, d.catalog, d.notifier, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func returnEstimate(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	return e, nil
}

func returnCommitted(_ context.Context, t interfaces.EstimateTransition) (entities.Estimate, error) {
	t.Estimate.Version++
	return t.Estimate, nil
}

func floatPtr(v float64) *float64 { return &v }

var (
	superadmin = entities.Actor{ID: "admin-1", Role: entities.RoleSuperAdmin}
	supervisor = entities.Actor{ID: "sup-1", Role: entities.RoleSupervisor}
	freelancer = entities.Actor{ID: "fl-1", Role: entities.RoleFreelancer}
	customer   = entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}
)

func TestEstimateUseCase_Submit(t *testing.T) {
	scenario := SubmitEstimateCommand{
		Customer: CustomerInput{Name: "Ana", Email: " Ana@Example.com "},
		TypeID:   "painting",
		Questions: []entities.AnsweredQuestion{
			{QuestionID: "area", Type: "area", AreaValue: 50, IncludeInEstimate: true},
			{
				QuestionID:        "walls",
				Type:              entities.QuestionTypeYesOrNo,
				IncludeInEstimate: true,
				SelectedOption:    &entities.QuestionOption{Title: "Yes", Value: 20, ValueSubType: entities.ValueSubTypePerSqft},
			},
		},
	}

	t.Run("prices the scenario and creates the customer", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.catalog.EXPECT().GetServiceType(gomock.Any(), "painting").
			Return(entities.ServiceType{ID: "painting", Active: true, BaseEstimationValueUnit: 100}, nil)
		d.customers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{}, nil)
		d.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Email != "ana@example.com" || c.ID == "" {
					t.Fatalf("unexpected customer %+v", c)
				}
				return c, nil
			})
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, ev entities.Event) {
				if ev.Type != entities.EventEstimateSubmitted {
					t.Fatalf("unexpected event %s", ev.Type)
				}
			})

		res, err := uc.Submit(context.Background(), scenario)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.FinalPrice != 6000 || res.Estimate.EstimatedAmount != 6000 {
			t.Fatalf("expected 6000, got %v / %v", res.FinalPrice, res.Estimate.EstimatedAmount)
		}
		if res.Estimate.AreaSqft != 50 {
			t.Fatalf("expected area 50, got %v", res.Estimate.AreaSqft)
		}
		if res.Estimate.Status != entities.EstimateStatusSubmitted || res.Estimate.Version != 1 {
			t.Fatalf("unexpected estimate %+v", res.Estimate)
		}
	})

	t.Run("reuses an existing customer", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.catalog.EXPECT().GetServiceType(gomock.Any(), "painting").
			Return(entities.ServiceType{ID: "painting", Active: true, BaseEstimationValueUnit: 100}, nil)
		d.customers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{ID: "cus-9"}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.Submit(context.Background(), scenario)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Estimate.CustomerID != "cus-9" {
			t.Fatalf("expected cus-9, got %s", res.Estimate.CustomerID)
		}
	})

	t.Run("reports catalog and question errors together", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.catalog.EXPECT().GetServiceType(gomock.Any(), "painting").Return(entities.ServiceType{}, nil)

		cmd := scenario
		cmd.Customer.Email = "not-an-email"
		cmd.Questions = append([]entities.AnsweredQuestion{}, scenario.Questions...)
		cmd.Questions = append(cmd.Questions, entities.AnsweredQuestion{Type: "slider", IncludeInEstimate: true})

		_, err := uc.Submit(context.Background(), cmd)
		var verr *domainerr.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		want := map[string]bool{"customer.email": false, "type_id": false, "questions[2].type": false}
		for _, f := range verr.Fields {
			if _, ok := want[f.Field]; ok {
				want[f.Field] = true
			}
		}
		for field, seen := range want {
			if !seen {
				t.Fatalf("expected field %s in %v", field, verr.Fields)
			}
		}
	})

	t.Run("storage failure is not a domain error", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.catalog.EXPECT().GetServiceType(gomock.Any(), "painting").Return(entities.ServiceType{}, errors.New("dynamo down"))

		_, err := uc.Submit(context.Background(), scenario)
		if err == nil || errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}

func TestEstimateUseCase_AssignToSupervisor(t *testing.T) {
	t.Run("requires an actor", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.AssignToSupervisor(context.Background(), entities.Actor{}, "est-1", "sup-1")
		if !errors.Is(err, domainerr.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("supervisor cannot assign", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.AssignToSupervisor(context.Background(), supervisor, "est-1", "sup-1")
		if !errors.Is(err, domainerr.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)
		_, err := uc.AssignToSupervisor(context.Background(), superadmin, "est-1", "sup-1")
		if !errors.Is(err, ErrEstimateNotFound) || !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("assigns", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSubmitted, SupervisorProgress: entities.SupervisorProgressNone, Version: 1}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		e, err := uc.AssignToSupervisor(context.Background(), superadmin, "est-1", " sup-1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.AssignedSupervisor != "sup-1" || e.Status != entities.EstimateStatusAssigned {
			t.Fatalf("unexpected estimate %+v", e)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDeal}, nil)
		_, err := uc.AssignToSupervisor(context.Background(), superadmin, "est-1", "sup-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("version conflict surfaces as conflict", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSubmitted}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrVersionConflict)
		_, err := uc.AssignToSupervisor(context.Background(), superadmin, "est-1", "sup-1")
		if !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestEstimateUseCase_SendToFreelancers(t *testing.T) {
	assigned := entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAssigned, AssignedSupervisor: "sup-1"}

	t.Run("none valid", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(assigned, nil)
		d.freelancers.EXPECT().GetByIDs(gomock.Any(), []string{"fl-1", "fl-2"}).
			Return([]entities.Freelancer{{ID: "fl-1", Active: false}}, nil)

		_, err := uc.SendToFreelancers(context.Background(), supervisor, "est-1", []string{"fl-1", "fl-2", "fl-1"})
		if !errors.Is(err, ErrNoValidFreelancers) || !errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected ErrNoValidFreelancers, got %v", err)
		}
	})

	t.Run("stores active freelancers", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(assigned, nil)
		d.freelancers.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).
			Return([]entities.Freelancer{{ID: "fl-1", Active: true}, {ID: "fl-2", Active: false}}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		e, err := uc.SendToFreelancers(context.Background(), supervisor, "est-1", []string{"fl-1", "fl-2", "fl-3"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(e.SentToFreelancers) != 1 || e.SentToFreelancers[0] != "fl-1" {
			t.Fatalf("unexpected freelancers %v", e.SentToFreelancers)
		}
		if e.SupervisorProgress != entities.SupervisorProgressRequestSent {
			t.Fatalf("unexpected progress %s", e.SupervisorProgress)
		}
	})

	t.Run("other supervisor", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(assigned, nil)
		other := entities.Actor{ID: "sup-2", Role: entities.RoleSupervisor}
		_, err := uc.SendToFreelancers(context.Background(), other, "est-1", []string{"fl-1"})
		if !errors.Is(err, ErrNotAssignedSupervisor) {
			t.Fatalf("expected ErrNotAssignedSupervisor, got %v", err)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.SendToFreelancers(context.Background(), supervisor, "est-1", nil)
		if !errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})
}

func TestEstimateUseCase_SubmitQuotation(t *testing.T) {
	invited := entities.Estimate{
		ID:                 "est-1",
		Status:             entities.EstimateStatusAssigned,
		AssignedSupervisor: "sup-1",
		SentToFreelancers:  []string{"fl-1"},
		Version:            3,
	}

	t.Run("uninvited freelancer", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invited, nil)
		other := entities.Actor{ID: "fl-9", Role: entities.RoleFreelancer}
		_, err := uc.SubmitQuotation(context.Background(), other, "est-1", QuotationProposal{Price: floatPtr(1000)})
		if !errors.Is(err, domainerr.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("duplicate submission", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		e := invited
		e.FreelancerQuotations = []entities.FreelancerQuotationRef{{FreelancerID: "fl-1", QuotationID: "q-0"}}
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		_, err := uc.SubmitQuotation(context.Background(), freelancer, "est-1", QuotationProposal{Price: floatPtr(1000)})
		if !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("price required", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.SubmitQuotation(context.Background(), freelancer, "est-1", QuotationProposal{DiscountPercent: 120})
		var verr *domainerr.ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 2 {
			t.Fatalf("expected two field errors, got %v", err)
		}
	})

	t.Run("computes discount and commits atomically", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invited, nil)
		d.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tr interfaces.EstimateTransition) (entities.Estimate, error) {
				if tr.NewQuotation == nil || tr.NewProject != nil || len(tr.UpdatedQuotations) != 0 {
					t.Fatalf("unexpected transition %+v", tr)
				}
				if tr.Estimate.Version != 3 {
					t.Fatalf("expected read version 3, got %d", tr.Estimate.Version)
				}
				return returnCommitted(ctx, tr)
			})
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.SubmitQuotation(context.Background(), freelancer, "est-1", QuotationProposal{Price: floatPtr(1000), DiscountPercent: 10})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		q := res.Quotation
		if q.DiscountAmount != 100 || q.GrandTotal != 900 || q.Role != entities.QuotationRoleFreelancer {
			t.Fatalf("unexpected quotation %+v", q)
		}
		if len(res.Estimate.FreelancerQuotations) != 1 || res.Estimate.FreelancerQuotations[0].QuotationID != q.ID {
			t.Fatalf("quotation not linked: %+v", res.Estimate.FreelancerQuotations)
		}
		if res.Estimate.SupervisorProgress != entities.SupervisorProgressRequestCompleted {
			t.Fatalf("unexpected progress %s", res.Estimate.SupervisorProgress)
		}
	})
}

func TestEstimateUseCase_CreateFinalQuotation(t *testing.T) {
	est := entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAssigned, AssignedSupervisor: "sup-1"}
	existing := []entities.Quotation{
		{ID: "q-1", EstimateID: "est-1", Role: entities.QuotationRoleFreelancer, CreatedBy: "fl-1", GrandTotal: 900},
		{ID: "q-2", EstimateID: "est-1", Role: entities.QuotationRoleFreelancer, CreatedBy: "fl-2", GrandTotal: 1200},
		{ID: "q-old", EstimateID: "est-1", Role: entities.QuotationRoleSupervisor, IsFinal: true, GrandTotal: 1300},
	}

	t.Run("chosen quotation from another estimate", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		d.quotations.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(existing, nil)
		_, err := uc.CreateFinalQuotation(context.Background(), supervisor, "est-1", FinalQuotationCommand{ChosenQuotationID: "q-foreign"})
		if !errors.Is(err, ErrQuotationNotFound) || !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("not the assigned supervisor", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		other := entities.Actor{ID: "sup-2", Role: entities.RoleSupervisor}
		_, err := uc.CreateFinalQuotation(context.Background(), other, "est-1", FinalQuotationCommand{ChosenQuotationID: "q-1"})
		if !errors.Is(err, domainerr.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("applies margin on the discounted price and invalidates prior finals", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		d.quotations.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(existing, nil)
		d.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tr interfaces.EstimateTransition) (entities.Estimate, error) {
				changed := map[string]entities.Quotation{}
				for _, q := range tr.UpdatedQuotations {
					changed[q.ID] = q
				}
				if q, ok := changed["q-old"]; !ok || q.IsFinal {
					t.Fatalf("prior final not invalidated: %+v", tr.UpdatedQuotations)
				}
				if q, ok := changed["q-1"]; !ok || !q.IsSelectedBySupervisor {
					t.Fatalf("chosen quotation not selected: %+v", tr.UpdatedQuotations)
				}
				if _, ok := changed["q-2"]; ok {
					t.Fatalf("untouched quotation rewritten")
				}
				return returnCommitted(ctx, tr)
			})
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.CreateFinalQuotation(context.Background(), supervisor, "est-1", FinalQuotationCommand{
			ChosenQuotationID: "q-1",
			Proposal:          QuotationProposal{MarginType: entities.MarginTypePercentage, MarginPercent: 15},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		q := res.Quotation
		if q.Price != 900 || q.MarginAmount != 135 || q.GrandTotal != 1035 || !q.IsFinal {
			t.Fatalf("unexpected final quotation %+v", q)
		}
		if res.Estimate.Status != entities.EstimateStatusFinalCreated ||
			res.Estimate.FinalQuotation != q.ID ||
			res.Estimate.FreelancerSelectedQuotation != "q-1" ||
			res.Estimate.SupervisorProgress != entities.SupervisorProgressFinalQuotationCreated {
			t.Fatalf("unexpected estimate %+v", res.Estimate)
		}
	})
}

func TestEstimateUseCase_ApproveFinalQuotation(t *testing.T) {
	t.Run("already approved", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSuperAdminApproved}, nil)
		_, err := uc.ApproveFinalQuotation(context.Background(), superadmin, "est-1", QuotationProposal{})
		if !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("before a final quotation exists", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAssigned}, nil)
		_, err := uc.ApproveFinalQuotation(context.Background(), superadmin, "est-1", QuotationProposal{})
		if !errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("margin on top of the supervisor total", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{
			ID: "est-1", CustomerID: "cus-1", Status: entities.EstimateStatusFinalCreated, FinalQuotation: "q-final",
		}, nil)
		d.quotations.EXPECT().GetByID(gomock.Any(), "q-final").
			Return(entities.Quotation{ID: "q-final", EstimateID: "est-1", Role: entities.QuotationRoleSupervisor, GrandTotal: 1035, IsFinal: true}, nil)
		d.repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(returnCommitted)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.ApproveFinalQuotation(context.Background(), superadmin, "est-1", QuotationProposal{
			MarginType: entities.MarginTypeAmount, MarginAmount: 65,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Quotation.GrandTotal != 1100 || !res.Quotation.SuperAdminApproved || res.Quotation.Role != entities.QuotationRoleAdmin {
			t.Fatalf("unexpected admin quotation %+v", res.Quotation)
		}
		if res.Estimate.Status != entities.EstimateStatusSuperAdminApproved ||
			res.Estimate.CustomerProgress != entities.CustomerProgressSentToCustomer ||
			res.Estimate.AdminFinalQuotation != res.Quotation.ID {
			t.Fatalf("unexpected estimate %+v", res.Estimate)
		}
	})
}

func TestEstimateUseCase_CustomerResponse(t *testing.T) {
	for _, status := range []entities.EstimateStatus{
		entities.EstimateStatusSubmitted,
		entities.EstimateStatusFinalCreated,
		entities.EstimateStatusCustomerAccepted,
		entities.EstimateStatusDeal,
	} {
		t.Run("forbidden from "+string(status), func(t *testing.T) {
			uc, d := newEstimateUseCase(t)
			d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
				Return(entities.Estimate{ID: "est-1", CustomerID: "cus-1", Status: status}, nil)
			_, err := uc.CustomerResponse(context.Background(), customer, "est-1", CustomerResponseCommand{Status: "accepted"})
			if !errors.Is(err, domainerr.ErrForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
		})
	}

	t.Run("another customer", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", CustomerID: "cus-2", Status: entities.EstimateStatusSuperAdminApproved}, nil)
		_, err := uc.CustomerResponse(context.Background(), customer, "est-1", CustomerResponseCommand{Status: "accepted"})
		if !errors.Is(err, ErrNotEstimateCustomer) {
			t.Fatalf("expected ErrNotEstimateCustomer, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.CustomerResponse(context.Background(), customer, "est-1", CustomerResponseCommand{Status: "maybe"})
		if !errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", CustomerID: "cus-1", Status: entities.EstimateStatusSuperAdminApproved}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		e, err := uc.CustomerResponse(context.Background(), customer, "est-1", CustomerResponseCommand{Status: " Rejected ", Reason: "too expensive"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Status != entities.EstimateStatusCustomerRejected || e.CustomerResponse == nil || e.CustomerResponse.Reason != "too expensive" {
			t.Fatalf("unexpected estimate %+v", e)
		}
		if !e.CustomerResponse.RespondedAt.Equal(fixedNow) {
			t.Fatalf("unexpected responded_at %v", e.CustomerResponse.RespondedAt)
		}
	})
}

func TestEstimateUseCase_Cancel(t *testing.T) {
	t.Run("only from superadmin approved", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAssigned}, nil)
		_, err := uc.Cancel(context.Background(), superadmin, "est-1", "duplicate")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancels", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSuperAdminApproved}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnEstimate)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
		e, err := uc.Cancel(context.Background(), superadmin, "est-1", " duplicate ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Status != entities.EstimateStatusCancelled || e.CancellationReason != "duplicate" {
			t.Fatalf("unexpected estimate %+v", e)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.GetByID(context.Background(), customer, "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("customer sees only own estimates", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", CustomerID: "cus-2"}, nil)
		_, err := uc.GetByID(context.Background(), customer, "est-1")
		if !errors.Is(err, domainerr.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("supervisor reads any", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", CustomerID: "cus-2"}, nil)
		e, err := uc.GetByID(context.Background(), supervisor, "est-1")
		if err != nil || e.ID != "est-1" {
			t.Fatalf("unexpected result %+v %v", e, err)
		}
	})
}

func TestEstimateUseCase_ListQuotations(t *testing.T) {
	t.Run("customers cannot list", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.ListQuotations(context.Background(), customer, "est-1")
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("other supervisor", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", AssignedSupervisor: "sup-2"}, nil)
		_, err := uc.ListQuotations(context.Background(), supervisor, "est-1")
		if !errors.Is(err, ErrNotAssignedSupervisor) {
			t.Fatalf("expected ErrNotAssignedSupervisor, got %v", err)
		}
	})

	t.Run("lists", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", AssignedSupervisor: "sup-1"}, nil)
		d.quotations.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)
		qs, err := uc.ListQuotations(context.Background(), supervisor, "est-1")
		if err != nil || len(qs) != 2 {
			t.Fatalf("unexpected result %+v %v", qs, err)
		}
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		uc, d := newEstimateUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", AssignedSupervisor: "sup-1"}, nil)
		d.quotations.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, errors.New("throttled"))
		_, err := uc.ListQuotations(context.Background(), supervisor, "est-1")
		var derr *domainerr.Error
		if err == nil || errors.As(err, &derr) {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}
