package usecase

import (
	"context"
	"fmt"
	"strings"

	"tecnofit-assistant/pkg/llmprovider"
)

// faqTurn answers from the knowledge base only. The entries are rendered
// into the system prompt as P:/R: pairs and the model is instructed not to
// answer outside them.
func (uc *implUseCase) faqTurn(ctx context.Context, question string) (turnResult, error) {
	entries := uc.knowledge.Load(ctx)

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, fmt.Sprintf("P: %s\nR: %s", e.Question, e.Answer))
	}

	reply, err := uc.generate(ctx,
		fmt.Sprintf(PromptFAQSystem, strings.Join(blocks, "\n\n")),
		[]llmprovider.Message{{Role: "user", Text: question}},
		FAQTemperature,
	)
	if err != nil {
		return turnResult{}, err
	}
	return turnResult{reply: reply}, nil
}
