package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/apperr"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError maps the core error taxonomy to HTTP status codes.
// Anything untyped is a 500.
func RespondAppError(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	switch kind {
	case apperr.KindNotFound:
		RespondError(c, http.StatusNotFound, err)
	case apperr.KindInvalidArgument:
		RespondError(c, http.StatusBadRequest, err)
	case apperr.KindInvalidTransition:
		RespondError(c, http.StatusUnprocessableEntity, err)
	case apperr.KindConflict:
		RespondError(c, http.StatusConflict, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
