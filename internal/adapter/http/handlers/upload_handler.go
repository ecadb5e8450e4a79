package handlers

import (
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

func (h *UploadHandler) Presign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.PresignUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	ticket, err := h.usecase.PresignUpload(c.Request.Context(), actor, payload.Filename, payload.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadTicket(ticket))
}
