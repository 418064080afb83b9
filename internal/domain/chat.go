package domain

import (
	"context"
	"errors"
)

// ErrChatNotConfigured marks a chat request made without an AI-provider key.
// Checked per request, not at startup.
var ErrChatNotConfigured = errors.New("Gemini API key not configured")

// ChatRequest is a single free-text question for the chat relay. Every call
// is stateless; there is no conversation memory.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatUsecase defines the interface for the chat relay
type ChatUsecase interface {
	// Relay forwards the message to the AI provider and returns generated text
	Relay(ctx context.Context, message string) (string, error)
}
