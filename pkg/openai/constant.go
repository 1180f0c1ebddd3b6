package openai

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o-mini"
)
