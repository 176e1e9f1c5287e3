package services

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"
)

var ErrMissingCompletionKey = errors.New("completion service API key is not configured")

// CompletionRequest is one shot against the text-completion service.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// CompletionProvider is the seam between the AI operations and the actual
// completion service; tests swap in a stub.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var Completion CompletionProvider = openaiProvider{}

// HasCompletionKey reports whether the server-side completion credential is
// present. The org brain route checks this before doing any work.
func HasCompletionKey() bool {
	return len(viper.GetString("openai.api_key")) > 0
}

type openaiProvider struct{}

func (openaiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !HasCompletionKey() {
		return "", ErrMissingCompletionKey
	}

	cfg := openai.DefaultConfig(viper.GetString("openai.api_key"))
	if endpoint := viper.GetString("openai.endpoint"); len(endpoint) > 0 {
		cfg.BaseURL = endpoint
	}

	client := openai.NewClientWithConfig(cfg)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
