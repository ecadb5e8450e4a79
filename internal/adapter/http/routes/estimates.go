package routes

import (
	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, estimateHandler *handlers.EstimateHandler, dealHandler *handlers.DealHandler) {
	estimates := rg.Group(PathEstimates)

	// Service requests come from anonymous visitors.
	estimates.POST("", estimateHandler.Submit)

	protected := estimates.Group("", auth)
	{
		protected.GET("/:id", middleware.RequireAction(entities.ActionViewEstimate), estimateHandler.Get)
		protected.GET("/:id/quotations", middleware.RequireAction(entities.ActionListQuotations), estimateHandler.ListQuotations)
		protected.PATCH("/:id/assign", middleware.RequireAction(entities.ActionAssignSupervisor), estimateHandler.AssignToSupervisor)
		protected.POST("/:id/freelancers", middleware.RequireAction(entities.ActionSendToFreelancers), estimateHandler.SendToFreelancers)
		protected.POST("/:id/quotations", middleware.RequireAction(entities.ActionSubmitQuotation), estimateHandler.SubmitQuotation)
		protected.POST("/:id/final-quotation", middleware.RequireAction(entities.ActionCreateFinalQuotation), estimateHandler.CreateFinalQuotation)
		protected.POST("/:id/approve", middleware.RequireAction(entities.ActionApproveFinalQuotation), estimateHandler.ApproveFinalQuotation)
		protected.POST("/:id/response", middleware.RequireAction(entities.ActionCustomerResponse), estimateHandler.CustomerResponse)
		protected.PATCH("/:id/cancel", middleware.RequireAction(entities.ActionCancelEstimate), estimateHandler.Cancel)
		protected.POST("/:id/deal", middleware.RequireAction(entities.ActionConvertToDeal), dealHandler.ConvertToDeal)
	}
}
