package bootstrap

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/openai"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
)

func TestBuildWiresOpenAIProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		LLMProvider: "openai",
		LLMModel:    "gpt-4o-mini",
	}

	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if app.Router == nil {
		t.Fatal("expected router to be wired")
	}
	if _, ok := app.LLM.(*openai.Client); !ok {
		t.Fatalf("expected *openai.Client, got %T", app.LLM)
	}
	if app.AssessService.Model != "gpt-4o-mini" {
		t.Fatalf("expected model to reach service, got %q", app.AssessService.Model)
	}
}

func TestBuildUnknownProviderFallsBackToPlaceholder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := Build(config.Config{LLMProvider: "mainframe", LLMModel: "m1"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		t.Fatalf("expected placeholder client, got %T", app.LLM)
	}
}

func TestBuildOpenAIRequiresModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if _, err := Build(config.Config{LLMProvider: "openai"}); err == nil {
		t.Fatal("expected error when model is empty")
	}
}
