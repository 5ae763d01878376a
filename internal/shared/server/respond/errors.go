package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/telemetry"
)

// ErrorResponse is the standardized error payload. The message is the only
// field on the wire; the code is used for logs and metrics.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
