package summarize

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// GroqClient talks to Groq's OpenAI-compatible chat completion API. The
// credential arrives with each request, so a client is constructed per
// call rather than held with a baked-in key.
type GroqClient struct {
	baseURL string
}

func NewGroqClient(baseURL string) *GroqClient {
	return &GroqClient{baseURL: baseURL}
}

func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	cfg := openai.DefaultConfig(req.APIKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %q", req.Model)
	}

	return resp.Choices[0].Message.Content, nil
}
