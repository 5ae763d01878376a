package bootstrap

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/assess"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/format"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/gemini"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/ollama"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/openai"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	LLM           llm.Client
	AssessService *assess.Service
	AssessHandler *assess.Handler
	FormatHandler *format.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	llmClient, err := buildLLMClient(cfg)
	if err != nil {
		return nil, err
	}

	assessSvc := &assess.Service{
		LLM:      llmClient,
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		MinWords: cfg.MinDescriptionWords,
	}

	app := &App{
		Config:        cfg,
		LLM:           llmClient,
		AssessService: assessSvc,
		AssessHandler: assess.NewHandler(assessSvc),
		FormatHandler: format.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: app.Config,
		Assess: app.AssessHandler,
		Format: app.FormatHandler,
	})

	return app, nil
}

func buildLLMClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("build openai client: %w", err)
		}
		return client, nil
	case "ollama":
		client, err := ollama.NewClient(cfg.OllamaHost, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("build ollama client: %w", err)
		}
		return client, nil
	case "gemini":
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("build gemini client: %w", err)
		}
		return client, nil
	default:
		log.Printf("bootstrap: unknown LLM_PROVIDER %q; using placeholder client", cfg.LLMProvider)
		return llm.PlaceholderClient{}, nil
	}
}
