package handlers

import (
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MilestonePaymentHandler handles customer payments of approved milestones.
type MilestonePaymentHandler struct {
	usecase usecase.IMilestonePaymentUseCase
}

func NewMilestonePaymentHandler(uc usecase.IMilestonePaymentUseCase) *MilestonePaymentHandler {
	return &MilestonePaymentHandler{usecase: uc}
}

func (h *MilestonePaymentHandler) PayMilestone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.MilestonePaymentRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	payment, err := h.usecase.PayMilestone(c.Request.Context(), actor, c.Param("id"), c.Param("mid"), payload.GatewayPayload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMilestonePayment(payment))
}

func (h *MilestonePaymentHandler) ListPayments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	payments, err := h.usecase.ListPayments(c.Request.Context(), actor, c.Param("id"), c.Param("mid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMilestonePayments(payments))
}
