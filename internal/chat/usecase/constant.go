package usecase

// Log prefixes
const (
	LogPrefixHandleTurn = "internal.chat.usecase.HandleTurn"
)

// DefaultHistoryLimit caps how many past messages are replayed into reply
// prompts. Stored history is unbounded within the repository's own limits.
const DefaultHistoryLimit = 20

// Prompts. The assistant speaks Portuguese end to end.
const (
	// PromptFAQSystem grounds the answer strictly in the provided entries.
	// %s is the rendered P:/R: context block.
	PromptFAQSystem = `Você é um especialista técnico da Tecnofit. Responda ESTRITAMENTE com base no contexto abaixo. Se a resposta não estiver no contexto, diga que não possui essa informação.

CONTEXTO:
%s`

	// PromptSalesSystem drives the data-collection loop while the lead is
	// still incomplete.
	PromptSalesSystem = `Você é de Vendas da Tecnofit. Peça NOME e TELEFONE para prosseguir. Use o histórico da conversa para não repetir perguntas já respondidas.`

	// PromptGeneralPersona is the fallback persona.
	PromptGeneralPersona = `Você é o Assistente Virtual da Tecnofit.
Seu foco exclusivo é gestão de academias, crossfit e centros esportivos.

DIRETRIZES:
1. Para saudações ("Oi", "Tudo bem"): Seja cordial, breve e pergunte como pode ajudar a academia do usuário.
2. Para assuntos FORA DO CONTEXTO (Clima, política, piadas, conhecimentos gerais):
   - Explique educadamente que seu foco é apenas no sistema Tecnofit.
   - Tente redirecionar o usuário perguntando se ele quer saber sobre Funcionalidades ou Planos.

Mantenha tom profissional e prestativo.`
)

// MsgLeadAcknowledgment closes the sales loop once the lead is complete.
// %s is the captured name.
const MsgLeadAcknowledgment = "Obrigado %s. Recebi seus dados. Um consultor entrará em contato. Te ajudo com mais algum assunto?"

// Generation temperatures per branch. Grounded answers run cold;
// conversational branches get room to phrase naturally.
const (
	FAQTemperature     = 0.2
	SalesTemperature   = 0.7
	GeneralTemperature = 0.7
)
