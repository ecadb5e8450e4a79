package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"
	mock_interfaces "dealflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentDeps struct {
	repo     *mock_interfaces.MockIMilestonePaymentRepository
	projects *mock_interfaces.MockIProjectRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	notifier *mock_interfaces.MockINotifier
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*MilestonePaymentUseCase, paymentDeps) {
	ctrl := gomock.NewController(t)
	d := paymentDeps{
		repo:     mock_interfaces.NewMockIMilestonePaymentRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewMilestonePaymentUseCase(d.repo, d.projects, d.gateway, opts, d.notifier, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func approvedMilestoneProject() entities.Project {
	return projectWith(entities.Milestone{ID: "m-1", Title: "Walls", Amount: 550.5, Status: entities.MilestoneStatusApproved})
}

func returnPayment(_ context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error) {
	return p, nil
}

func TestMilestonePaymentUseCase_PayMilestone(t *testing.T) {
	validPayload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1,"payer":{"email":"buyer@example.com"}}`)

	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidGatewayPayload) {
			t.Fatalf("expected ErrInvalidGatewayPayload, got %v", err)
		}
	})

	t.Run("only the project customer pays", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		other := entities.Actor{ID: "cus-2", Role: entities.RoleCustomer}
		_, err := uc.PayMilestone(context.Background(), other, "prj-1", "m-1", validPayload)
		if !errors.Is(err, domainerr.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("milestone not approved", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		p := approvedMilestoneProject()
		p.Milestones[0].Status = entities.MilestoneStatusReleaseRequested
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)
		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if !errors.Is(err, ErrMilestoneNotApproved) {
			t.Fatalf("expected ErrMilestoneNotApproved, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").
			Return([]entities.MilestonePayment{{ID: "p-0", Status: entities.PaymentStatusApproved}}, nil)
		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("charges the stored milestone amount", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").
			Return([]entities.MilestonePayment{{ID: "p-0", Status: entities.PaymentStatusDenied}}, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject)
		d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload sent: %v", err)
				}
				if req["transaction_amount"] != 550.5 || req["external_reference"] != "m-1" {
					t.Fatalf("payload not enriched: %v", req)
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnPayment)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		p, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.ID != "mp-123" || p.Amount != 550.5 || p.Status != entities.PaymentStatusApproved || p.PaidBy != "cus-1" {
			t.Fatalf("unexpected payment %+v", p)
		}
		if p.GatewayPayload["status"] != "approved" {
			t.Fatalf("gateway payload not parsed: %v", p.GatewayPayload)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject).Times(2)
		d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"Customer not found","status":400}`))

		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if !errors.Is(err, ErrPaymentGatewayCustomerNotFound) {
			t.Fatalf("expected ErrPaymentGatewayCustomerNotFound, got %v", err)
		}
	})

	t.Run("rejected payment is stored without notification", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject).Times(2)
		d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", json.RawMessage(`{}`), nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnPayment)

		p, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if err != nil || p.Status != entities.PaymentStatusDenied {
			t.Fatalf("unexpected result %+v %v", p, err)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{Mock: true})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnPayment)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		p, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved || p.Amount != 550.5 || p.ID == "" {
			t.Fatalf("unexpected payment %+v", p)
		}
	})

	t.Run("sandbox payer defaults", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{AccessToken: "TEST-123", TestPayerEmail: "sandbox@testuser.com"})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject)
		d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req struct {
					Payer map[string]any `json:"payer"`
				}
				_ = json.Unmarshal(payload, &req)
				if req.Payer["email"] != "sandbox@testuser.com" || req.Payer["type"] != "customer" {
					t.Fatalf("unexpected payer %v", req.Payer)
				}
				return "mp-1", "pending", json.RawMessage(`{}`), nil
			})
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnPayment)

		p, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil || p.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected result %+v %v", p, err)
		}
	})
}

func TestMilestonePaymentUseCase_PaymentClaim(t *testing.T) {
	validPayload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}`)

	t.Run("losing a concurrent claim never reaches the gateway", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, interfaces.ErrVersionConflict)

		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if !errors.Is(err, ErrConcurrentUpdate) || !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("claim held by another attempt", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		p := approvedMilestoneProject()
		claimedAt := fixedNow.Add(-time.Minute)
		p.Milestones[0].PaymentClaimedAt = &claimedAt
		p.Milestones[0].PaymentClaimedBy = "cus-1"
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)

		_, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload)
		if !errors.Is(err, ErrPaymentInProgress) || !errors.Is(err, domainerr.ErrConflict) {
			t.Fatalf("expected ErrPaymentInProgress, got %v", err)
		}
	})

	t.Run("claim is written before the gateway and kept for an approved charge", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		p := approvedMilestoneProject()
		expired := fixedNow.Add(-paymentClaimTTL - time.Second)
		p.Milestones[0].PaymentClaimedAt = &expired
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		gomock.InOrder(
			d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, in entities.Project) (entities.Project, error) {
					m := in.Milestones[0]
					if m.PaymentClaimedAt == nil || !m.PaymentClaimedAt.Equal(fixedNow) || m.PaymentClaimedBy != "cus-1" {
						t.Fatalf("claim not written: %+v", m)
					}
					if in.Version != 4 {
						t.Fatalf("claim must carry the loaded version, got %d", in.Version)
					}
					return returnProject(ctx, in)
				}),
			d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				Return("mp-1", "approved", json.RawMessage(`{}`), nil),
		)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnPayment)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		if _, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("failed gateway call releases the claim", func(t *testing.T) {
		uc, d := newPaymentUseCase(t, PaymentOptions{})
		d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
		d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return(nil, nil)
		gomock.InOrder(
			d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnProject),
			d.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("timeout")),
			d.projects.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, in entities.Project) (entities.Project, error) {
					m := in.Milestones[0]
					if m.PaymentClaimedAt != nil || m.PaymentClaimedBy != "" {
						t.Fatalf("claim not released: %+v", m)
					}
					if in.Version != 5 {
						t.Fatalf("release must carry the claimed version, got %d", in.Version)
					}
					return returnProject(ctx, in)
				}),
		)

		if _, err := uc.PayMilestone(context.Background(), customer, "prj-1", "m-1", validPayload); err == nil {
			t.Fatalf("expected gateway error")
		}
	})
}

func TestMilestonePaymentUseCase_ListPayments(t *testing.T) {
	uc, d := newPaymentUseCase(t, PaymentOptions{})
	d.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(approvedMilestoneProject(), nil)
	d.repo.EXPECT().ListByMilestoneID(gomock.Any(), "m-1").Return([]entities.MilestonePayment{{ID: "p-1"}}, nil)

	got, err := uc.ListPayments(context.Background(), freelancer, "prj-1", "m-1")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}
