package router

import (
	"context"
	"fmt"
	"strings"

	"tecnofit-assistant/pkg/llmprovider"
)

// Classify determines the user intent from the latest message.
// lastAssistant is the assistant message immediately preceding it ("" when
// none exists); faqQuestions is the current knowledge-base question set.
// An LLM failure propagates to the caller; a garbled label does not — it
// normalizes to geral.
func (r *SemanticRouter) Classify(ctx context.Context, message, lastAssistant string, faqQuestions []string) (Output, error) {
	var bullets strings.Builder
	for _, q := range faqQuestions {
		bullets.WriteString(FAQQuestionBullet)
		bullets.WriteString(q)
		bullets.WriteString("\n")
	}

	systemPrompt := fmt.Sprintf(PromptClassifierSystem, lastAssistant, bullets.String())

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemPrompt},
		Messages: []llmprovider.Message{
			{Role: "user", Text: message},
		},
		Temperature: ClassifierTemperature,
	})
	if err != nil {
		return Output{}, fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	intent := Normalize(resp.Text())
	r.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)

	return Output{Intent: intent, UserQuestion: message}, nil
}
