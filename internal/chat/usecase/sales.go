package usecase

import (
	"context"
	"fmt"

	"tecnofit-assistant/internal/model"
)

// salesTurn runs the lead-capture loop. Each sales turn re-extracts from the
// latest user message: a complete lead (name plus phone or email) closes the
// loop with an acknowledgment, anything less keeps asking for the missing
// contact data.
func (uc *implUseCase) salesTurn(ctx context.Context, conv model.Conversation) (turnResult, error) {
	latest := conv.Messages[len(conv.Messages)-1].Content

	extracted, err := uc.extractor.Extract(ctx, latest)
	if err != nil {
		return turnResult{}, err
	}

	if extracted.Complete() {
		uc.l.Infof(ctx, "%s: lead captured thread=%s", LogPrefixHandleTurn, conv.ThreadID)
		return turnResult{
			reply: fmt.Sprintf(MsgLeadAcknowledgment, *extracted.Nome),
			lead:  &extracted,
		}, nil
	}

	reply, err := uc.generate(ctx, PromptSalesSystem, uc.historyMessages(conv.Messages), SalesTemperature)
	if err != nil {
		return turnResult{}, err
	}
	return turnResult{reply: reply}, nil
}
