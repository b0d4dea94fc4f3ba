package ai

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider is a deterministic Provider for local runs and tests.
// It echoes the user input tagged with the requested tone.
type MockProvider struct{}

func NewMockProvider() *MockProvider { return &MockProvider{} }

func (p *MockProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	_ = ctx

	var system, user string
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = m.Content
		case RoleUser:
			user = m.Content
		}
	}

	if strings.Contains(system, "casual") {
		return fmt.Sprintf("Hey there! This is a mocked casual response to: %s", user), nil
	}
	if strings.Contains(system, "formal") {
		return fmt.Sprintf("This is a mocked formal response regarding: %s", user), nil
	}
	return fmt.Sprintf("Mocked response to: %s", user), nil
}
