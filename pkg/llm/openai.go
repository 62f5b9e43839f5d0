package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client       *openai.Client
	summaryModel openai.ChatModel
	videoModel   openai.ChatModel
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:       &client,
		summaryModel: openai.ChatModelGPT3_5Turbo,
		videoModel:   openai.ChatModelGPT4,
	}
}

// Summarize sends the article body verbatim and returns the first completion
// unchanged. There is no retry and no chunking: an article longer than the
// model's context window fails at the provider and surfaces as an error.
func (c *OpenAIClient) Summarize(ctx context.Context, body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("nothing to summarize")
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     c.summaryModel,
		MaxTokens: openai.Int(summaryMaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarySystemPrompt),
			openai.UserMessage("Summarize the following article: " + body),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}

// FindVideo asks a general-purpose chat model for a watch URL. The model has
// no live search capability, so the answer is unverified.
func (c *OpenAIClient) FindVideo(ctx context.Context, q VideoQuery) (VideoResolution, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     c.videoModel,
		MaxTokens: openai.Int(videoMaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(videoSystemPrompt),
			openai.UserMessage(buildVideoPrompt(q)),
		},
	})
	if err != nil {
		return VideoResolution{}, fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return VideoResolution{}, fmt.Errorf("no response from openai")
	}

	return parseResolution(resp.Choices[0].Message.Content), nil
}
