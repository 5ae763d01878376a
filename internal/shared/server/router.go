package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/assess"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/format"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/metrics"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server/middleware"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server/respond"
)

// RouterDeps carries the handlers registered on the engine.
type RouterDeps struct {
	Config config.Config
	Assess *assess.Handler
	Format *format.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// The assessment and echo routes live at the root path; they are part of the
// public contract.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Config.AnalyzeRatePerMin > 0 {
		r.Use(middleware.RateLimit(analyzeRateLimit(deps.Config)))
	}

	r.GET("/health", health)
	r.GET("/metrics", metrics.Handler())
	r.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := &r.RouterGroup
	deps.Format.RegisterRoutes(root)
	deps.Assess.RegisterRoutes(root)

	return r
}

// health godoc
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	map[string]bool
//	@Router		/health [get]
func health(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func analyzeRateLimit(cfg config.Config) middleware.RateLimitConfig {
	burst := cfg.AnalyzeRateBurst
	if burst <= 0 {
		burst = 5
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: cfg.AnalyzeRatePerMin / 60.0, Burst: burst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/analyze" {
				return "ANALYZE"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
