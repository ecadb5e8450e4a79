package handlers

import (
	"errors"
	"io"
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the estimate negotiation workflow: submission,
// supervisor assignment, freelancer quotations, final pricing and the customer
// verdict.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Submit is public: customers submit service requests without an account.
func (h *EstimateHandler) Submit(c *gin.Context) {
	var payload request.SubmitEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmitResult(res))
}

func (h *EstimateHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	e, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) ListQuotations(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	qs, err := h.usecase.ListQuotations(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

func (h *EstimateHandler) AssignToSupervisor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.AssignSupervisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	e, err := h.usecase.AssignToSupervisor(c.Request.Context(), actor, c.Param("id"), payload.SupervisorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) SendToFreelancers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.SendToFreelancersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	e, err := h.usecase.SendToFreelancers(c.Request.Context(), actor, c.Param("id"), payload.FreelancerIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) SubmitQuotation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	res, err := h.usecase.SubmitQuotation(c.Request.Context(), actor, c.Param("id"), payload.ToProposal())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotationResult(res))
}

func (h *EstimateHandler) CreateFinalQuotation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.FinalQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	res, err := h.usecase.CreateFinalQuotation(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotationResult(res))
}

// ApproveFinalQuotation accepts an empty body: the admin then approves the
// supervisor price as is.
func (h *EstimateHandler) ApproveFinalQuotation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.QuotationRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	res, err := h.usecase.ApproveFinalQuotation(c.Request.Context(), actor, c.Param("id"), payload.ToProposal())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotationResult(res))
}

func (h *EstimateHandler) CustomerResponse(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.CustomerResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	e, err := h.usecase.CustomerResponse(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	e, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// bindOptionalJSON binds the body when one was sent.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
