package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/models"
)

func ok(message string, data any) models.ActionResponse {
	return models.ActionResponse{Success: true, Message: message, Data: data}
}

// respondError converts any error into the action envelope. Validation and
// duplicate errors carry their field map; everything else only exposes the
// sanitized message. Storage failures are logged where they happen, in the
// service layer; only an error reaching this point untyped gets logged
// here, since nothing upstream has seen it.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	appErr, known := apperrors.As(err)
	if !known {
		appErr = apperrors.Sanitize(err)
		log.Error("action failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", appErr.Err,
		)
	}

	resp := models.ActionResponse{Success: false}
	switch appErr.Code {
	case apperrors.CodeValidation:
		resp.Errors = appErr.Fields
	case apperrors.CodeDuplicate:
		resp.Message = appErr.Message
		resp.Errors = appErr.Fields
	default:
		resp.Message = appErr.Message
	}

	c.JSON(appErr.HTTPStatus, resp)
}

func jsonOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Data: data})
}
