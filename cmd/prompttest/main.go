package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/assess"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/gemini"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/ollama"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm/openai"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
)

// Runs a project description through the live assessment pipeline so prompt
// changes can be checked against a real provider before deploying.
func main() {
	cfg := config.Load()

	descPath := flag.String("description", "", "Path to a text file with the project description")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (openai, ollama, gemini)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write the assessment JSON (optional)")
	minWords := flag.Int("min-words", cfg.MinDescriptionWords, "Minimum description word count")
	flag.Parse()

	if strings.TrimSpace(*descPath) == "" {
		exitErr("description path is required")
	}

	descBytes, err := os.ReadFile(*descPath)
	if err != nil {
		exitErr(fmt.Sprintf("read description: %v", err))
	}

	client, err := buildClient(cfg, *provider, *model)
	if err != nil {
		exitErr(err.Error())
	}

	svc := &assess.Service{
		LLM:      client,
		Provider: *provider,
		Model:    *model,
		MinWords: *minWords,
	}

	assessment, err := svc.Analyze(context.Background(), assess.AnalyzeRequest{
		ProjectDescription: string(descBytes),
	})
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	pretty, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(pretty) == 0 || pretty[len(pretty)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

func buildClient(cfg config.Config, provider, model string) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, model)
	case "ollama":
		return ollama.NewClient(cfg.OllamaHost, model)
	case "gemini":
		return gemini.NewClient(cfg.GeminiAPIKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
