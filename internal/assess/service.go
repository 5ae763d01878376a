package assess

import (
	"context"
	"strings"
	"time"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/metrics"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/telemetry"
)

// Service contains the assessment pipeline: word-count guard, prompt
// assembly, provider call, completion parsing.
type Service struct {
	LLM      llm.Client
	Provider string
	Model    string
	MinWords int
}

// CountWords reports the number of whitespace-separated tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Analyze runs one assessment end to end.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Assessment, error) {
	minWords := s.MinWords
	if minWords <= 0 {
		minWords = config.DefaultMinDescriptionWords
	}

	words := CountWords(req.ProjectDescription)
	if words < minWords {
		return Assessment{}, newWordCountError(words, minWords)
	}

	if s.LLM == nil {
		return Assessment{}, &UpstreamError{Err: llm.ErrNotConfigured}
	}

	metrics.IncAssessmentStarted()
	startedAt := time.Now().UTC()

	system, user := BuildPrompt(req.ProjectDescription)
	completion, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		System: system,
		Prompt: user,
		APIKey: req.OpenAIAPIKey,
	})
	if err != nil {
		upstreamErr := &UpstreamError{Err: err}
		s.failAssessment(ctx, startedAt, words, upstreamErr)
		return Assessment{}, upstreamErr
	}

	assessment, err := ParseAssessment(completion)
	if err != nil {
		parseErr := &ParseError{Err: err}
		s.failAssessment(ctx, startedAt, words, parseErr)
		return Assessment{}, parseErr
	}

	completedAt := time.Now().UTC()
	metrics.IncAssessmentCompleted()
	metrics.ObserveAssessmentDurationMs(durationMs(startedAt, completedAt))
	telemetry.Info("assessment.complete", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"provider":    s.Provider,
		"model":       s.Model,
		"words":       words,
		"risks":       len(assessment.Risks),
		"rag_status":  assessment.RAGStatus,
		"duration_ms": durationMs(startedAt, completedAt),
	})
	return assessment, nil
}

func (s *Service) failAssessment(ctx context.Context, startedAt time.Time, words int, err error) {
	code, _ := ClassifyError(err)
	completedAt := time.Now().UTC()
	metrics.IncAssessmentFailed()
	metrics.ObserveAssessmentDurationMs(durationMs(startedAt, completedAt))
	telemetry.Error("assessment.failed", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"provider":    s.Provider,
		"model":       s.Model,
		"words":       words,
		"code":        code,
		"error":       sanitizeError(err),
		"duration_ms": durationMs(startedAt, completedAt),
	})
}

func durationMs(startedAt, completedAt time.Time) float64 {
	return float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0
}
