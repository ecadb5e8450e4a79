package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dealflow/internal/adapter/http/handlers/mocks"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestMilestonePaymentHandler_PayMilestone(t *testing.T) {
	t.Run("gateway payload is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		uc.EXPECT().PayMilestone(gomock.Any(), customer, "prj-1", "ms-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ entities.Actor, _, _ string, payload json.RawMessage) (entities.MilestonePayment, error) {
				if string(payload) != `{"token":"card-token"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.MilestonePayment{
					ID:          "123",
					MilestoneID: "ms-1",
					Amount:      500,
					Status:      entities.PaymentStatusApproved,
					Date:        time.Now(),
				}, nil
			})

		r := newTestRouter(customer)
		r.POST("/v1/projects/:id/milestones/:mid/payments", h.PayMilestone)

		w := doJSON(r, http.MethodPost, "/v1/projects/prj-1/milestones/ms-1/payments", `{"gateway_payload":{"token":"card-token"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
			{fmt.Errorf("create payment: %w", usecase.ErrPaymentGatewayBadRequest), http.StatusBadRequest},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
			h := NewMilestonePaymentHandler(uc)

			uc.EXPECT().PayMilestone(gomock.Any(), customer, "prj-1", "ms-1", gomock.Any()).Return(entities.MilestonePayment{}, tc.err)

			r := newTestRouter(customer)
			r.POST("/v1/projects/:id/milestones/:mid/payments", h.PayMilestone)

			w := doJSON(r, http.MethodPost, "/v1/projects/prj-1/milestones/ms-1/payments", "")
			if w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestMilestonePaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
	h := NewMilestonePaymentHandler(uc)

	uc.EXPECT().ListPayments(gomock.Any(), customer, "prj-1", "ms-1").Return(nil, nil)

	r := newTestRouter(customer)
	r.GET("/v1/projects/:id/milestones/:mid/payments", h.ListPayments)

	w := doJSON(r, http.MethodGet, "/v1/projects/prj-1/milestones/ms-1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}
}
