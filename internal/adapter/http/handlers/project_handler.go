package handlers

import (
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes projects and the milestone sub-engine. Every route
// answers with the full project so clients see recomputed progress.
type ProjectHandler struct {
	usecase usecase.IMilestoneUseCase
}

func NewProjectHandler(uc usecase.IMilestoneUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	p, err := h.usecase.GetProject(c.Request.Context(), actor, c.Param("id"))
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) AssignFreelancer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.AssignFreelancerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.AssignFreelancer(c.Request.Context(), actor, c.Param("id"), payload.FreelancerID)
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) AddMilestone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.MilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.AddMilestone(c.Request.Context(), actor, c.Param("id"), payload.ToSpec())
	h.write(c, http.StatusCreated, p, err)
}

func (h *ProjectHandler) AddDailyUpdate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.DailyUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.AddDailyUpdate(c.Request.Context(), actor, c.Param("id"), c.Param("mid"), payload.ToCommand())
	h.write(c, http.StatusCreated, p, err)
}

func (h *ProjectHandler) ApproveDailyUpdate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ApproveDailyUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.ApproveDailyUpdate(c.Request.Context(), actor, c.Param("id"), c.Param("mid"), c.Param("did"), *payload.ApprovedProgress)
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) RejectDailyUpdate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.RejectDailyUpdate(c.Request.Context(), actor, c.Param("id"), c.Param("mid"), c.Param("did"), payload.Reason)
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) RequestRelease(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	p, err := h.usecase.RequestRelease(c.Request.Context(), actor, c.Param("id"), c.Param("mid"))
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) ApproveMilestone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	p, err := h.usecase.ApproveMilestone(c.Request.Context(), actor, c.Param("id"), c.Param("mid"))
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) CancelMilestone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ReasonRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}
	p, err := h.usecase.CancelMilestone(c.Request.Context(), actor, c.Param("id"), c.Param("mid"), payload.Reason)
	h.write(c, http.StatusOK, p, err)
}

func (h *ProjectHandler) write(c *gin.Context, status int, p entities.Project, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, response.FromProject(p))
}
