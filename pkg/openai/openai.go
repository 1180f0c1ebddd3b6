package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openAIImpl{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

type openAIImpl struct {
	client *goopenai.Client
	model  string
}

// GenerateContent sends a chat completion request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: req.SystemInstruction.Text,
		})
	}

	for _, msg := range req.Messages {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    transformRole(msg.Role),
			Content: msg.Text,
		})
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	if req.JSONOutput {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return &Response{Usage: transformUsage(resp.Usage)}, nil
	}

	return &Response{
		Content: Content{
			Role: "model",
			Text: resp.Choices[0].Message.Content,
		},
		Usage: transformUsage(resp.Usage),
	}, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRole maps normalized roles to OpenAI chat roles.
func transformRole(role string) string {
	switch role {
	case "model", "assistant":
		return goopenai.ChatMessageRoleAssistant
	case "system":
		return goopenai.ChatMessageRoleSystem
	default:
		return goopenai.ChatMessageRoleUser
	}
}

func transformUsage(u goopenai.Usage) *Usage {
	return &Usage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}
