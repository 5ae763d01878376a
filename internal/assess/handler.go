package assess

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server/middleware"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessment service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

// analyze godoc
//
//	@Summary		Assess a project description
//	@Description	Validates the description against the minimum word count, sends it to the configured model provider and returns a structured risk assessment.
//	@Tags			assess
//	@Accept			json
//	@Produce		json
//	@Param			request	body		assess.AnalyzeRequest	true	"Project description and optional credential override"
//	@Success		200		{object}	assess.Assessment
//	@Failure		400		{object}	respond.ErrorResponse	"description below the minimum word count or malformed body"
//	@Failure		422		{object}	respond.ErrorResponse	"model output did not match the expected schema"
//	@Failure		502		{object}	respond.ErrorResponse	"model provider request failed"
//	@Failure		504		{object}	respond.ErrorResponse	"model provider request timed out"
//	@Router			/analyze [post]
func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON request body")
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	assessment, err := h.Svc.Analyze(ctx, req)
	if err != nil {
		code, status := ClassifyError(err)
		respond.Error(c, status, code, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, assessment)
}
