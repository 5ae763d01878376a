package main

import (
	"log"

	_ "github.com/katerynabilinska11/ProjectRiskAnalyzer/docs"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/bootstrap"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/server"
)

// @title           Project Risk Analyzer API
// @version         1.0
// @description     Analyzes project descriptions with an LLM and returns a structured risk assessment.

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)
	log.Printf("API docs available at http://localhost:%s/api-docs", cfg.Port)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
