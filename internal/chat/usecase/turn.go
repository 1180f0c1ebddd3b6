package usecase

import (
	"context"
	"fmt"
	"strings"

	"tecnofit-assistant/internal/chat"
	"tecnofit-assistant/internal/model"
	"tecnofit-assistant/internal/router"
	"tecnofit-assistant/internal/telemetry"
	"tecnofit-assistant/pkg/llmprovider"
)

// turnResult is what a branch handler produces: the reply text and,
// on the sales branch, a newly captured lead.
type turnResult struct {
	reply string
	lead  *model.Lead
}

// routeStep maps the classifier output to the branch that will run.
// It is a pure function over the closed intent set; anything the
// classifier normalized stays exactly as classified.
func routeStep(out router.Output) router.Intent {
	return out.Intent
}

// HandleTurn runs one full conversation turn: commit the user message,
// classify, dispatch to exactly one branch, commit the reply.
//
// The user message is committed before classification, so a failed turn
// still leaves it in history. Nothing after it (reply, lead) is committed
// unless the whole turn succeeds.
func (uc *implUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	if input.ThreadID == "" {
		return chat.TurnOutput{}, chat.ErrEmptyThreadID
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	unlock := uc.lockThread(input.ThreadID)
	defer unlock()

	ctx = telemetry.WithThreadID(ctx, input.ThreadID)

	userMsg := model.Message{Role: model.RoleUser, Content: input.Message}
	if err := uc.repo.AppendMessages(ctx, input.ThreadID, userMsg); err != nil {
		uc.l.Errorf(ctx, "%s: failed to append user message: %v", LogPrefixHandleTurn, err)
		return chat.TurnOutput{}, err
	}

	conv, err := uc.repo.Get(ctx, input.ThreadID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to load conversation: %v", LogPrefixHandleTurn, err)
		return chat.TurnOutput{}, err
	}

	classified, err := uc.router.Classify(ctx, input.Message, conv.LastAssistantBefore(), uc.knowledge.Questions(ctx))
	if err != nil {
		uc.l.Errorf(ctx, "%s: classification failed: %v", LogPrefixHandleTurn, err)
		return chat.TurnOutput{}, err
	}

	intent := routeStep(classified)
	uc.l.Infof(ctx, "%s: thread=%s intent=%s", LogPrefixHandleTurn, input.ThreadID, intent)

	var result turnResult
	switch intent {
	case router.IntentFAQ:
		result, err = uc.faqTurn(ctx, classified.UserQuestion)
	case router.IntentSales:
		result, err = uc.salesTurn(ctx, conv)
	default:
		result, err = uc.generalTurn(ctx, conv)
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s branch failed: %v", LogPrefixHandleTurn, intent, err)
		return chat.TurnOutput{}, err
	}

	if err := uc.repo.AppendMessages(ctx, input.ThreadID, model.Message{Role: model.RoleAssistant, Content: result.reply}); err != nil {
		uc.l.Errorf(ctx, "%s: failed to append reply: %v", LogPrefixHandleTurn, err)
		return chat.TurnOutput{}, err
	}

	leadOut := conv.Lead
	if result.lead != nil {
		if err := uc.repo.SetLead(ctx, input.ThreadID, *result.lead); err != nil {
			uc.l.Errorf(ctx, "%s: failed to store lead: %v", LogPrefixHandleTurn, err)
			return chat.TurnOutput{}, err
		}
		leadOut = result.lead
	}

	uc.tracer.TraceTurn(ctx, telemetry.TurnTrace{
		ThreadID:         input.ThreadID,
		Intent:           string(intent),
		UserMessage:      input.Message,
		AssistantMessage: result.reply,
		LeadCaptured:     result.lead != nil,
	})

	return chat.TurnOutput{
		ThreadID: input.ThreadID,
		Reply:    result.reply,
		Intent:   intent,
		Lead:     leadOut,
	}, nil
}

// generate runs one reply-producing model call and rejects empty output.
func (uc *implUseCase) generate(ctx context.Context, system string, msgs []llmprovider.Message, temperature float64) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: system},
		Messages:          msgs,
		Temperature:       temperature,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("%s: %w", LogPrefixHandleTurn, llmprovider.ErrEmptyResponse)
	}
	return reply, nil
}

// historyMessages converts stored history to prompt messages, keeping only
// the most recent historyLimit entries.
func (uc *implUseCase) historyMessages(msgs []model.Message) []llmprovider.Message {
	if len(msgs) > uc.historyLimit {
		msgs = msgs[len(msgs)-uc.historyLimit:]
	}

	out := make([]llmprovider.Message, 0, len(msgs))
	for _, m := range msgs {
		role := "user"
		if m.Role == model.RoleAssistant {
			role = "assistant"
		}
		out = append(out, llmprovider.Message{Role: role, Text: m.Content})
	}
	return out
}
