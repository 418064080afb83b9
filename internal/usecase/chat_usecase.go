package usecase

import (
	"context"
	"fmt"

	"go-sparkshield-backend/internal/domain"
	"go-sparkshield-backend/pkg/gemini"
)

// Fixed relay parameters. Keep values in sync with the public chat contract.
const (
	chatPreamble        = "You are a fire safety expert. Provide a brief, concise answer (maximum 3 sentences) about: "
	chatMaxOutputTokens = 100
	chatTemperature     = 0.7
)

// CompletionClient forwards a prompt to the upstream generative API.
type CompletionClient interface {
	IsConfigured() bool
	GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error)
}

type chatUsecase struct {
	ai CompletionClient
}

// NewChatUsecase creates a new chat relay usecase
func NewChatUsecase(ai CompletionClient) domain.ChatUsecase {
	return &chatUsecase{ai: ai}
}

func (uc *chatUsecase) Relay(ctx context.Context, message string) (string, error) {
	// Checked per request; no upstream call is made without a key.
	if !uc.ai.IsConfigured() {
		return "", domain.ErrChatNotConfigured
	}

	answer, err := uc.ai.GenerateContent(ctx, chatPreamble+message, gemini.GenerationConfig{
		MaxOutputTokens: chatMaxOutputTokens,
		Temperature:     chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate chat response: %w", err)
	}
	return answer, nil
}
