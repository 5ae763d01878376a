package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	apiKey string
	model  string
}

// NewClient constructs a Gemini client. The apiKey may be empty when callers
// supply a per-request credential instead.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
	}, nil
}

// Complete sends the prompt to Gemini and returns the first candidate's
// text. The SDK client is built per call so request credentials can apply.
func (c *Client) Complete(ctx context.Context, input llm.CompletionRequest) (string, error) {
	apiKey := strings.TrimSpace(input.APIKey)
	if apiKey == "" {
		apiKey = c.apiKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	if input.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(input.System)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(input.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response empty")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
