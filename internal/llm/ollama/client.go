package ollama

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	ollama "github.com/JexSrs/go-ollama"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
)

// Client implements llm.Client against a local Ollama daemon.
type Client struct {
	client *ollama.Ollama
	model  string
}

// NewClient constructs an Ollama client for the given host and model.
func NewClient(host, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Ollama")
	}
	parsed, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return &Client{
		client: ollama.New(*parsed),
		model:  model,
	}, nil
}

// Complete sends the prompt through the Generate endpoint. Ollama serves
// local models, so the per-request credential override does not apply.
func (c *Client) Complete(ctx context.Context, input llm.CompletionRequest) (string, error) {
	_ = ctx

	res, err := c.client.Generate(
		c.client.Generate.WithModel(c.model),
		c.client.Generate.WithSystem(input.System),
		c.client.Generate.WithPrompt(input.Prompt),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	if !res.Done {
		return "", fmt.Errorf("ollama response not complete")
	}

	content := strings.TrimSpace(res.Response)
	if content == "" {
		return "", fmt.Errorf("ollama response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
