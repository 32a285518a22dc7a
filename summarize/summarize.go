// Package summarize turns a batch of comments into an analyst-style
// summary via a remote chat-completion endpoint.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/nijaru/yt-comments/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// CompletionRequest bundles everything for one completion call. It is
// built immediately before the call and discarded after; the credential
// is never stored or logged.
type CompletionRequest struct {
	APIKey      string
	Model       string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Completer is the remote text-generation collaborator.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type Config struct {
	// CommentMaxLength truncates each comment before it enters the
	// prompt, capping prompt size.
	CommentMaxLength int
	MaxTokens        int
	Temperature      float32
}

func DefaultConfig() Config {
	return Config{
		CommentMaxLength: 200,
		MaxTokens:        1500,
		Temperature:      0.5,
	}
}

type Service struct {
	completer Completer
	config    Config
	logger    *logrus.Logger
}

func NewService(completer Completer, config Config) *Service {
	return &Service{
		completer: completer,
		config:    config,
		logger:    logrus.StandardLogger(),
	}
}

// BuildPrompt renders the fixed analysis prompt: analyst framing, the
// four requested sections, the optional instruction block, and the
// truncated comments.
func BuildPrompt(comments []string, instructions string, commentMaxLength int) string {
	var instructionText string
	if instructions != "" {
		instructionText = fmt.Sprintf("\n\nAdditional Instructions: %s", instructions)
	}

	lines := make([]string, 0, len(comments))
	for _, comment := range comments {
		lines = append(lines, "- "+truncate(comment, commentMaxLength))
	}

	return fmt.Sprintf(`You are a professional content analyst. Analyze these YouTube comments and provide:

1. **Main Themes** - Key topics discussed (3-5 bullet points)
2. **Sentiment Breakdown** - Overall tone (positive/negative/mixed) with percentages
3. **Notable Insights** - Interesting or recurring observations
4. **Top Concerns/Praise** - What viewers loved or complained about most
%s

Comments to analyze:
%s
`, instructionText, strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}

// Summarize sends the comment batch to the completion endpoint with the
// fixed analysis prompt and returns the generated summary verbatim. An
// empty batch never reaches the remote collaborator.
func (s *Service) Summarize(ctx context.Context, apiKey, model string, comments []string, instructions string) (string, error) {
	const op = "SummaryService.Summarize"
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"model":         model,
		"comment_count": len(comments),
	})

	if len(comments) == 0 {
		return "", apperrors.InvalidInput(op, nil, "No comments to summarize.")
	}
	if apiKey == "" {
		return "", apperrors.Unauthorized(op, nil, "Invalid API key. Check your Groq API credentials.")
	}

	prompt := BuildPrompt(comments, instructions, s.config.CommentMaxLength)
	logger.WithField("prompt_length", len(prompt)).Info("Requesting summary")

	summary, err := s.completer.Complete(ctx, CompletionRequest{
		APIKey:      apiKey,
		Model:       model,
		Prompt:      prompt,
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		logger.WithError(err).Error("Completion request failed")
		return "", classifySummarizeError(op, model, err)
	}

	logger.WithField("summary_length", len(summary)).Info("Summary generated")
	return summary, nil
}

// classifySummarizeError converts a completion fault into one of the
// closed set of user-facing summarize failures. The structured API
// error status is preferred; message sniffing remains as a fallback.
func classifySummarizeError(op, model string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return apperrors.Unauthorized(op, err, "Invalid API key. Check your Groq API credentials.")
		case http.StatusTooManyRequests:
			return apperrors.RateLimited(op, err, "Rate limit exceeded. Wait a moment and try again.")
		case http.StatusNotFound:
			return apperrors.InvalidInput(op, err, fmt.Sprintf("Model '%s' not found or not accessible.", model))
		}
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "authentication") || strings.Contains(lower, "api key"):
		return apperrors.Unauthorized(op, err, "Invalid API key. Check your Groq API credentials.")
	case strings.Contains(lower, "rate limit"):
		return apperrors.RateLimited(op, err, "Rate limit exceeded. Wait a moment and try again.")
	case strings.Contains(lower, "model"):
		return apperrors.InvalidInput(op, err, fmt.Sprintf("Model '%s' not found or not accessible.", model))
	default:
		return apperrors.BadGateway(op, err, fmt.Sprintf("API Error: %s", err.Error()))
	}
}
