package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tecnofit-assistant/internal/model"
	"tecnofit-assistant/pkg/llmprovider"
	pkgLog "tecnofit-assistant/pkg/log"
)

// Log prefixes
const (
	LogPrefixExtract = "internal.lead.Extract"
)

// Extraction prompt and schema. The model returns one JSON object with every
// field present and explicit null for anything not found in the text.
const (
	PromptExtractionSystem = `Extraia nome, telefone, e-mail e empresa do texto do usuário.
Retorne um JSON com os campos "nome", "telefone", "email" e "empresa".
Retorne null em cada campo que não encontrar. Não invente dados.`

	ExtractionTemperature = 0.0
)

func leadSchema() map[string]interface{} {
	field := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "string",
			"nullable":    true,
			"description": desc,
		}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"nome":     field("Nome do cliente"),
			"telefone": field("Telefone ou WhatsApp com DDD"),
			"email":    field("E-mail de contato"),
			"empresa":  field("Nome da academia ou empresa"),
		},
	}
}

// Extractor extracts structured lead data from free text.
type Extractor interface {
	Extract(ctx context.Context, text string) (model.Lead, error)
}

// LLMExtractor extracts lead data through the LLM structured-output mode.
type LLMExtractor struct {
	llm llmprovider.Generator
	l   pkgLog.Logger
}

var _ Extractor = (*LLMExtractor)(nil)

// New creates a new LLMExtractor
func New(llm llmprovider.Generator, l pkgLog.Logger) *LLMExtractor {
	return &LLMExtractor{llm: llm, l: l}
}

// Extract populates a Lead from the given text. Absence of extractable data
// is not an error: unparseable or all-null model output yields an empty Lead.
// Only an upstream LLM failure returns a non-nil error.
func (e *LLMExtractor) Extract(ctx context.Context, text string) (model.Lead, error) {
	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: PromptExtractionSystem},
		Messages: []llmprovider.Message{
			{Role: "user", Text: text},
		},
		Temperature:    ExtractionTemperature,
		ResponseSchema: leadSchema(),
	})
	if err != nil {
		return model.Lead{}, fmt.Errorf("%s: LLM call failed: %w", LogPrefixExtract, err)
	}

	var lead model.Lead
	raw := salvageJSON(resp.Text())
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		e.l.Warnf(ctx, "%s: unparseable extraction output, treating as empty: %v", LogPrefixExtract, err)
		return model.Lead{}, nil
	}

	normalize(&lead)
	return lead, nil
}

// normalize collapses empty-string fields to nil so absence is always
// represented the same way.
func normalize(lead *model.Lead) {
	fields := []**string{&lead.Nome, &lead.Telefone, &lead.Email, &lead.Empresa}
	for _, f := range fields {
		if *f != nil && strings.TrimSpace(**f) == "" {
			*f = nil
		}
	}
}

// salvageJSON strips markdown fences and trims to the outermost JSON object,
// tolerating models that wrap their JSON in prose.
func salvageJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	}

	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first >= 0 && last > first {
		return raw[first : last+1]
	}
	return raw
}
