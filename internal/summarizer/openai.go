package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAISummarizer calls an OpenAI-compatible Chat Completions API
// (Groq by default) to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

// NewOpenAISummarizer builds a new summarizer instance. An empty baseURL keeps
// the library default endpoint.
func NewOpenAISummarizer(apiKey, baseURL, model string) (*OpenAISummarizer, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("model is empty")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Summarize sends one chat completion request and returns the first choice
// verbatim.
func (s *OpenAISummarizer) Summarize(ctx context.Context, content string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(content)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("response has no choices (model = %s)", s.model)
	}

	return resp.Choices[0].Message.Content, nil
}
