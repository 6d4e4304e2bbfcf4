package output

import (
	"context"

	"venture-agent/internal/domain/entity"
)

type LLMPort interface {
	// Chat runs a free-text completion over the given messages.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// ChatJSON runs a completion constrained to a single JSON object.
	ChatJSON(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Temperature float32
}

type ChatResponse struct {
	Content string
}
