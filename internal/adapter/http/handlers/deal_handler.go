package handlers

import (
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	usecase usecase.IDealUseCase
}

func NewDealHandler(uc usecase.IDealUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

// ConvertToDeal turns a customer accepted estimate into a project. The body is
// optional.
func (h *DealHandler) ConvertToDeal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ConvertToDealRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respond(c, bindingError(err))
		return
	}

	res, err := h.usecase.ConvertToDeal(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDealResult(res))
}
