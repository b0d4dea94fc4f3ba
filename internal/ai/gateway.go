package ai

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/stylecraft/backend/internal/logging"
)

const (
	emptyQueryText = "Query was empty."
	notConfigured  = "Error: completion client is not configured."

	casualStyle = "casual, friendly, and engaging"
	formalStyle = "strictly formal, professional, and highly articulate"

	systemPromptFmt = "You are an AI assistant. Your task is to rephrase the user's input into a %s tone. " +
		"Provide only the rephrased text, without any preamble or conversational filler."
)

// Gateway turns a query into a casual/formal response pair. It never returns
// an error: every failure mode collapses to a descriptive "Error:" string so
// the caller always receives two strings. A nil provider (misconfiguration at
// startup) short-circuits every call without network I/O.
type Gateway struct {
	provider Provider
	baseURL  string
}

func NewGateway(provider Provider, baseURL string) *Gateway {
	return &Gateway{provider: provider, baseURL: baseURL}
}

// GeneratePair produces the two styled responses sequentially, one attempt
// each. Both results being empty means the provider produced no content at
// all; error strings still count as content.
func (g *Gateway) GeneratePair(ctx context.Context, query string) (casual, formal string) {
	if query == "" {
		return emptyQueryText, emptyQueryText
	}
	if g.provider == nil {
		return notConfigured, notConfigured
	}

	casual = g.generate(ctx, query, casualStyle)
	formal = g.generate(ctx, query, formalStyle)
	return casual, formal
}

func (g *Gateway) generate(ctx context.Context, query, style string) string {
	out, err := g.provider.Chat(ctx, []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(systemPromptFmt, style)},
		{Role: RoleUser, Content: query},
	})
	if err != nil {
		logging.Errorw("completion call failed", "style", style, "error", err)
		return g.errorText(err)
	}
	return strings.TrimSpace(out)
}

// errorText maps a provider error to the string persisted in its place.
func (g *Gateway) errorText(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: completion API returned an error (%d).", apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("Error: completion API returned an error (%d).", reqErr.HTTPStatusCode)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Error: could not connect to completion service at %s.", g.baseURL)
	}
	return "Error: an unexpected error occurred during generation."
}
