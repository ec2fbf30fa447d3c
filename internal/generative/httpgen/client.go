package httpgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cardwise/card-assistant/internal/generative"
)

const defaultTimeout = 60 * time.Second

// Client calls the external text-generation service over plain JSON HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("generation service base URL is required")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}, nil
}

type generateRequest struct {
	Query        string `json:"query"`
	Context      string `json:"context,omitempty"`
	SystemPrompt string `json:"system_prompt"`
}

type generateResponse struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

func (c *Client) Generate(ctx context.Context, req generative.Request) (*generative.Response, error) {
	body, err := json.Marshal(generateRequest{
		Query:        req.Query,
		Context:      req.Context,
		SystemPrompt: generative.SystemPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generate response: %w", err)
	}
	if out.Text == "" {
		return nil, fmt.Errorf("generation service returned empty text")
	}
	if out.Confidence <= 0 {
		out.Confidence = generative.DefaultConfidence
	}

	return &generative.Response{Text: out.Text, Confidence: out.Confidence}, nil
}
