package router

import "strings"

// Intent is the closed classification label set. Nothing outside it ever
// reaches routing logic.
type Intent string

const (
	IntentFAQ     Intent = "faq"
	IntentSales   Intent = "vendas"
	IntentGeneral Intent = "geral"
)

// Output is the classification result plus the verbatim text that was
// classified, so downstream handlers don't re-derive it.
type Output struct {
	Intent       Intent
	UserQuestion string
}

// Normalize maps a free-form classifier reply into the closed Intent set.
// Unmatched input coerces to IntentGeneral (fail-safe default).
func Normalize(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentFAQ:
		return IntentFAQ
	case IntentSales:
		return IntentSales
	case IntentGeneral:
		return IntentGeneral
	default:
		return IntentGeneral
	}
}
