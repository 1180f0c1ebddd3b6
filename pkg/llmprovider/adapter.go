package llmprovider

import (
	"context"

	"tecnofit-assistant/pkg/gemini"
	"tecnofit-assistant/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text}},
		}
	}

	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{
			Role:  transformGeminiRole(msg.Role),
			Parts: []gemini.Part{{Text: msg.Text}},
		}
	}

	if req.ResponseSchema != nil {
		geminiReq.ResponseMIMEType = "application/json"
		geminiReq.ResponseSchema = req.ResponseSchema
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Content.Parts) > 0 {
		out.Content = Message{Role: "model", Text: resp.Content.Parts[0].Text}
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// transformGeminiRole maps normalized roles to Gemini content roles.
// Gemini only accepts "user" and "model".
func transformGeminiRole(role string) string {
	if role == "model" || role == "assistant" {
		return "model"
	}
	return "user"
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Messages:    make([]openai.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.ResponseSchema != nil,
	}

	if req.SystemInstruction != nil {
		openaiReq.SystemInstruction = &openai.Content{
			Role: "system",
			Text: req.SystemInstruction.Text,
		}
	}

	for i, msg := range req.Messages {
		openaiReq.Messages[i] = openai.Content{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: "model", Text: resp.Content.Text},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
