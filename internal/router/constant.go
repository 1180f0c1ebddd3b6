package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classification prompt. The verbatim previous assistant question goes into
// CONTEXTO ANTERIOR; rule 1 beats rule 2 so that a bare name or phone number
// sent right after a data-collection question routes to vendas even when it
// resembles nothing in the FAQ.
const (
	PromptClassifierSystem = `Você é um classificador de intenções.

CONTEXTO ANTERIOR (Pergunta do Bot):
"%s"

REGRAS DE CLASSIFICAÇÃO:
1. vendas: SE o usuário está respondendo a uma pergunta sobre dados (nome, telefone) OU demonstrando interesse em contratar/preços.
2. faq: SE a mensagem for semanticamente similar a:
%s
3. geral: Apenas saudações, agradecimentos ou conversas fora do escopo.

Se as regras 1 e 2 se aplicarem ao mesmo tempo, a regra 1 vence.

Responda APENAS a categoria.`

	FAQQuestionBullet = "- "
)

// Classifier configuration
const (
	ClassifierTemperature = 0.1
)
