package domain

import "errors"

var (
	MessageSuccessChat = "assistant reply generated successfully"
	MessageFailedChat  = "failed to generate assistant reply"

	ErrEmptyChatMessage       = errors.New("chat message must not be empty")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
