package router

import (
	"context"

	"tecnofit-assistant/pkg/llmprovider"
	"tecnofit-assistant/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message, lastAssistant string, faqQuestions []string) (Output, error)
}

// SemanticRouter classifies user intent using the LLM
type SemanticRouter struct {
	llm llmprovider.Generator
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
