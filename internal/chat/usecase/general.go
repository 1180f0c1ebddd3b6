package usecase

import (
	"context"

	"tecnofit-assistant/internal/model"
)

// generalTurn handles everything that is neither FAQ nor sales: small talk,
// greetings, off-topic questions. Replies in the company persona over the
// full recent history.
func (uc *implUseCase) generalTurn(ctx context.Context, conv model.Conversation) (turnResult, error) {
	reply, err := uc.generate(ctx, PromptGeneralPersona, uc.historyMessages(conv.Messages), GeneralTemperature)
	if err != nil {
		return turnResult{}, err
	}
	return turnResult{reply: reply}, nil
}
