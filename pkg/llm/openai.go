package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient talks to OpenAI's chat completions API. It also serves
// Groq, whose API is OpenAI-compatible behind a different base URL.
type OpenAIClient struct {
	client       openai.Client
	provider     string
	defaultModel string
}

// NewOpenAIClient creates a client for the OpenAI API.
func NewOpenAIClient(apiKey, defaultModel string) *OpenAIClient {
	return &OpenAIClient{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		provider:     "openai",
		defaultModel: defaultModel,
	}
}

// NewGroqClient creates a client for Groq's OpenAI-compatible endpoint.
func NewGroqClient(apiKey, baseURL, defaultModel string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		provider:     "groq",
		defaultModel: defaultModel,
	}
}

// Provider returns the provider identifier for usage records.
func (c *OpenAIClient) Provider() string {
	return c.provider
}

// Generate produces a completion via the chat completions endpoint.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
	}
	if req.System != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(req.System))
	}
	params.Messages = append(params.Messages, openai.UserMessage(req.Prompt))
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s completion failed: %w", c.provider, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, ErrEmptyCompletion
	}

	return &Response{
		Text:             completion.Choices[0].Message.Content,
		PromptTokens:     int(completion.Usage.PromptTokens),
		CompletionTokens: int(completion.Usage.CompletionTokens),
	}, nil
}
