package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	perplexityURL   = "https://api.perplexity.ai/chat/completions"
	perplexityModel = "llama-3.1-sonar-small-128k-online"
)

// PerplexityClient resolves videos through a search-augmented provider: the
// model performs live retrieval before answering, so results are more
// trustworthy than the generic strategy, but a separate credential is needed.
type PerplexityClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPerplexityClient(apiKey string) *PerplexityClient {
	return &PerplexityClient{
		apiKey:     apiKey,
		baseURL:    perplexityURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *PerplexityClient) FindVideo(ctx context.Context, q VideoQuery) (VideoResolution, error) {
	payload := perplexityRequest{
		Model: perplexityModel,
		Messages: []perplexityMessage{
			{Role: "user", Content: buildSearchPrompt(q)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return VideoResolution{}, fmt.Errorf("perplexity encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return VideoResolution{}, fmt.Errorf("perplexity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return VideoResolution{}, fmt.Errorf("perplexity fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return VideoResolution{}, fmt.Errorf("perplexity API error: status %d", resp.StatusCode)
	}

	var raw perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return VideoResolution{}, fmt.Errorf("perplexity decode: %w", err)
	}
	if len(raw.Choices) == 0 {
		return VideoResolution{}, fmt.Errorf("no response from perplexity")
	}

	return parseResolution(raw.Choices[0].Message.Content), nil
}

type perplexityRequest struct {
	Model    string              `json:"model"`
	Messages []perplexityMessage `json:"messages"`
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
