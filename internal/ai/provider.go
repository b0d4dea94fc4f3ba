package ai

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a single-shot chat completion capability.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
