package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/assess"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/format"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/shared/config"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &assess.Service{
		LLM:      llm.PlaceholderClient{},
		Provider: "openai",
		Model:    "gpt-4o-mini",
		MinWords: 5,
	}
	return NewRouter(RouterDeps{
		Config: config.Config{},
		Assess: assess.NewHandler(svc),
		Format: format.NewHandler(),
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if !strings.Contains(w.Body.String(), "assessments_started_total") {
		t.Fatalf("expected counters in metrics body, got: %s", w.Body.String())
	}
}

func TestAPIDocsRedirectsToIndex(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api-docs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api-docs/index.html" {
		t.Fatalf("unexpected redirect target: %s", loc)
	}
}

func TestRootRoutesRegistered(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/formatJson", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /formatJson, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"projectDescription":"too short"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from /analyze guard, got %d", w.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		port string
		want string
	}{
		{"", ":3000"},
		{"8080", ":8080"},
		{":9090", ":9090"},
	}
	for _, tc := range cases {
		if got := Addr(tc.port); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.port, got, tc.want)
		}
	}
}
