package format

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/metrics"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server/respond"
)

// Handler serves the JSON echo endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the echo route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/formatJson", h.formatJSON)
}

// formatJSON godoc
//
//	@Summary		Echo a payload back as JSON
//	@Description	Returns the request payload as the JSON response body. JSON bodies round-trip structurally; other bodies come back as a JSON string of the raw text.
//	@Tags			format
//	@Accept			json
//	@Produce		json
//	@Success		200
//	@Failure		400	{object}	respond.ErrorResponse	"malformed JSON body"
//	@Router			/formatJson [post]
func (h *Handler) formatJSON(c *gin.Context) {
	metrics.IncEchoRequest()

	if c.ContentType() == "application/json" {
		var payload any
		if err := c.ShouldBindJSON(&payload); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON request body")
			return
		}
		respond.OK(c, payload)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body")
		return
	}
	respond.OK(c, string(raw))
}
