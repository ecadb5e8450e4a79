package routes

import (
	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	pathMilestone = "/:id/milestones/:mid"
)

func addProjectRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, projectHandler *handlers.ProjectHandler, paymentHandler *handlers.MilestonePaymentHandler) {
	projects := rg.Group(PathProjects, auth)
	{
		projects.GET("/:id", middleware.RequireAction(entities.ActionViewProject), projectHandler.Get)
		projects.PATCH("/:id/freelancer", middleware.RequireAction(entities.ActionAssignFreelancer), projectHandler.AssignFreelancer)
		projects.POST("/:id/milestones", middleware.RequireAction(entities.ActionAddMilestone), projectHandler.AddMilestone)
	}

	milestone := projects.Group(pathMilestone)
	{
		milestone.POST("/daily-updates", middleware.RequireAction(entities.ActionAddDailyUpdate), projectHandler.AddDailyUpdate)
		milestone.PATCH("/daily-updates/:did/approve", middleware.RequireAction(entities.ActionReviewDailyUpdate), projectHandler.ApproveDailyUpdate)
		milestone.PATCH("/daily-updates/:did/reject", middleware.RequireAction(entities.ActionReviewDailyUpdate), projectHandler.RejectDailyUpdate)
		milestone.PATCH("/release", middleware.RequireAction(entities.ActionRequestRelease), projectHandler.RequestRelease)
		milestone.PATCH("/approve", middleware.RequireAction(entities.ActionApproveMilestone), projectHandler.ApproveMilestone)
		milestone.PATCH("/cancel", middleware.RequireAction(entities.ActionCancelMilestone), projectHandler.CancelMilestone)

		milestone.POST("/payments", middleware.RequireAction(entities.ActionPayMilestone), paymentHandler.PayMilestone)
		milestone.GET("/payments", middleware.RequireAction(entities.ActionViewPayments), paymentHandler.ListPayments)
	}
}
