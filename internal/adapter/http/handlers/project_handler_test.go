package handlers

import (
	"net/http"
	"testing"
	"time"

	"dealflow/internal/adapter/http/handlers/mocks"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestProjectHandler_AddMilestone(t *testing.T) {
	t.Run("dates accept plain days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().AddMilestone(gomock.Any(), supervisor, "prj-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ entities.Actor, _ string, spec usecase.MilestoneSpec) (entities.Project, error) {
				if !spec.StartDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected start date: %v", spec.StartDate)
				}
				if spec.DueDate != nil {
					t.Fatalf("expected no due date, got %v", spec.DueDate)
				}
				return entities.Project{ID: "prj-1", Milestones: []entities.Milestone{{ID: "ms-1", Title: spec.Title}}}, nil
			})

		r := newTestRouter(supervisor)
		r.POST("/v1/projects/:id/milestones", h.AddMilestone)

		w := doJSON(r, http.MethodPost, "/v1/projects/prj-1/milestones",
			`{"title":"Foundation","amount":500,"start_date":"2026-03-01","end_date":"2026-03-10"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := newTestRouter(supervisor)
		r.POST("/v1/projects/:id/milestones", h.AddMilestone)

		w := doJSON(r, http.MethodPost, "/v1/projects/prj-1/milestones",
			`{"title":"Foundation","amount":-5,"start_date":"2026-03-01","end_date":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := newTestRouter(supervisor)
		r.POST("/v1/projects/:id/milestones", h.AddMilestone)

		w := doJSON(r, http.MethodPost, "/v1/projects/prj-1/milestones",
			`{"title":"Foundation","start_date":"03/01/2026","end_date":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ApproveDailyUpdate(t *testing.T) {
	t.Run("progress is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := newTestRouter(supervisor)
		r.PATCH("/v1/projects/:id/milestones/:mid/daily-updates/:did/approve", h.ApproveDailyUpdate)

		w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/daily-updates/du-1/approve", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("progress above 100", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := newTestRouter(supervisor)
		r.PATCH("/v1/projects/:id/milestones/:mid/daily-updates/:did/approve", h.ApproveDailyUpdate)

		w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/daily-updates/du-1/approve", `{"approved_progress":101}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero progress is a valid review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().ApproveDailyUpdate(gomock.Any(), supervisor, "prj-1", "ms-1", "du-1", 0).Return(entities.Project{ID: "prj-1"}, nil)

		r := newTestRouter(supervisor)
		r.PATCH("/v1/projects/:id/milestones/:mid/daily-updates/:did/approve", h.ApproveDailyUpdate)

		w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/daily-updates/du-1/approve", `{"approved_progress":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().ApproveDailyUpdate(gomock.Any(), supervisor, "prj-1", "ms-1", "du-1", 60).Return(entities.Project{}, usecase.ErrDailyUpdateNotPending)

		r := newTestRouter(supervisor)
		r.PATCH("/v1/projects/:id/milestones/:mid/daily-updates/:did/approve", h.ApproveDailyUpdate)

		w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/daily-updates/du-1/approve", `{"approved_progress":60}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_RequestRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMilestoneUseCase(ctrl)
	h := NewProjectHandler(uc)

	uc.EXPECT().RequestRelease(gomock.Any(), freelancer, "prj-1", "ms-9").Return(entities.Project{}, usecase.ErrMilestoneNotFound)

	r := newTestRouter(freelancer)
	r.PATCH("/v1/projects/:id/milestones/:mid/release", h.RequestRelease)

	w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-9/release", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_CancelMilestone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMilestoneUseCase(ctrl)
	h := NewProjectHandler(uc)

	uc.EXPECT().CancelMilestone(gomock.Any(), supervisor, "prj-1", "ms-1", "").
		Return(entities.Project{ID: "prj-1", Milestones: []entities.Milestone{{ID: "ms-1", Status: entities.MilestoneStatusCancelled}}}, nil)

	r := newTestRouter(supervisor)
	r.PATCH("/v1/projects/:id/milestones/:mid/cancel", h.CancelMilestone)

	w := doJSON(r, http.MethodPatch, "/v1/projects/prj-1/milestones/ms-1/cancel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
