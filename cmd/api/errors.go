package main

import (
	"net/http"

	"weather-bff/internal/apperror"

	"github.com/gin-gonic/gin"
)

// writeError answers with the status and message an *apperror.Error carries.
// Any other error gets a 500 with fallbackMessage.
func (app *App) writeError(c *gin.Context, err error, fallbackMessage string, fields ...any) {
	attrs := append([]any{
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDHeader),
		"error", err,
	}, fields...)

	if appErr, ok := apperror.As(err); ok {
		app.logger.Error("request failed", append(attrs, "kind", appErr.Kind.String(), "status", appErr.Status)...)
		c.JSON(apperror.StatusOf(appErr), ErrorResponse{Error: appErr.Message})
		return
	}

	app.logger.Error("unexpected error", attrs...)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMessage})
}
