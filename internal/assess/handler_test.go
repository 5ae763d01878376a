package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
)

type stubLLM struct {
	completion string
	err        error
	called     bool
	lastReq    llm.CompletionRequest
}

func (s *stubLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	_ = ctx
	s.called = true
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.completion, nil
}

const validCompletion = "```json\n{\"summary\": \"A migration project with a tight deadline.\", \"risks\": [\"unclear scope\", \"single vendor dependency\"], \"ragStatus\": \"amber\"}\n```"

func setupAssessRouter(t *testing.T, client *stubLLM, minWords int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &Service{LLM: client, Provider: "openai", Model: "gpt-4o-mini", MinWords: minWords}
	router := gin.New()
	NewHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func wordsOfLength(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestAnalyzeRejectsShortDescription(t *testing.T) {
	client := &stubLLM{completion: validCompletion}
	router := setupAssessRouter(t, client, 500)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": "too short here",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(payload.Error, "at least 500 words") {
		t.Fatalf("expected minimum stated in error, got %q", payload.Error)
	}
	if !strings.Contains(payload.Error, "(got 3)") {
		t.Fatalf("expected actual count in error, got %q", payload.Error)
	}
	if client.called {
		t.Fatalf("expected provider not to be called")
	}
}

func TestAnalyzeBoundaryWordCountPasses(t *testing.T) {
	client := &stubLLM{completion: validCompletion}
	router := setupAssessRouter(t, client, 500)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(500),
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", resp.Code, resp.Body.String())
	}
	if !client.called {
		t.Fatalf("expected provider to be called for boundary-length description")
	}
}

func TestAnalyzeSuccessReturnsAssessmentShape(t *testing.T) {
	client := &stubLLM{completion: validCompletion}
	router := setupAssessRouter(t, client, 5)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", resp.Code, resp.Body.String())
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload) != 3 {
		t.Fatalf("expected exactly 3 keys, got %v", payload)
	}
	for _, key := range []string{"summary", "risks", "ragStatus"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing key %q in response", key)
		}
	}
	if payload["ragStatus"] != "amber" {
		t.Fatalf("unexpected ragStatus: %v", payload["ragStatus"])
	}
	risks, ok := payload["risks"].([]any)
	if !ok || len(risks) != 2 {
		t.Fatalf("unexpected risks: %v", payload["risks"])
	}
}

func TestAnalyzeUpstreamErrorPassesMessageThrough(t *testing.T) {
	client := &stubLLM{err: fmt.Errorf("openai error: Incorrect API key provided (invalid_request_error)")}
	router := setupAssessRouter(t, client, 5)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
	})

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "openai error: Incorrect API key provided (invalid_request_error)" {
		t.Fatalf("expected provider message verbatim, got %q", payload.Error)
	}
}

func TestAnalyzeTimeoutMapsToGatewayTimeout(t *testing.T) {
	client := &stubLLM{err: fmt.Errorf("openai request timeout: %w", llm.ErrTimeout)}
	router := setupAssessRouter(t, client, 5)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
	})

	if resp.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", resp.Code)
	}
}

func TestAnalyzeNonSchemaCompletionReturns422(t *testing.T) {
	client := &stubLLM{completion: "I am sorry, I cannot assess this project."}
	router := setupAssessRouter(t, client, 5)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
	})

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error == "" {
		t.Fatalf("expected parse error message")
	}
}

func TestAnalyzeCredentialOverrideReachesProvider(t *testing.T) {
	client := &stubLLM{completion: validCompletion}
	router := setupAssessRouter(t, client, 5)

	resp := postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
		"openAIApiKey":       "request-key",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if client.lastReq.APIKey != "request-key" {
		t.Fatalf("expected request credential forwarded, got %q", client.lastReq.APIKey)
	}

	resp = postAnalyze(t, router, map[string]string{
		"projectDescription": wordsOfLength(10),
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if client.lastReq.APIKey != "" {
		t.Fatalf("expected empty override when key absent, got %q", client.lastReq.APIKey)
	}
}

func TestAnalyzeMalformedBodyRejected(t *testing.T) {
	client := &stubLLM{completion: validCompletion}
	router := setupAssessRouter(t, client, 5)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"projectDescription":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if client.called {
		t.Fatalf("expected provider not to be called")
	}
}
