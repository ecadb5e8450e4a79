package routes

import (
	"dealflow/internal/adapter/http/handlers"
	"dealflow/internal/adapter/http/middleware"
	"dealflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathUploads = "/uploads"

func addUploadRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, uploadHandler *handlers.UploadHandler) {
	uploads := rg.Group(PathUploads, auth)
	uploads.POST("/presign", middleware.RequireAction(entities.ActionPresignUpload), uploadHandler.Presign)
}
