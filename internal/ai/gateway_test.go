package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type styledProvider struct{}

func (styledProvider) Chat(ctx context.Context, messages []Message) (string, error) {
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
		return "  casual: " + user + "  ", nil
	}
	return "  formal: " + user + "  ", nil
}

type failingProvider struct {
	err error
}

func (p failingProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", p.err
}

func TestGeneratePair_EmptyQuery(t *testing.T) {
	g := NewGateway(styledProvider{}, "http://localhost:11434/v1")

	casual, formal := g.GeneratePair(context.Background(), "")
	if casual != "Query was empty." || formal != "Query was empty." {
		t.Fatalf("unexpected pair: %q / %q", casual, formal)
	}
}

func TestGeneratePair_NilProvider(t *testing.T) {
	g := NewGateway(nil, "http://localhost:11434/v1")

	casual, formal := g.GeneratePair(context.Background(), "hello")
	if casual != "Error: completion client is not configured." {
		t.Fatalf("unexpected casual: %q", casual)
	}
	if formal != casual {
		t.Fatalf("expected identical slots, got %q / %q", casual, formal)
	}
}

func TestGeneratePair_StyledAndTrimmed(t *testing.T) {
	g := NewGateway(styledProvider{}, "http://localhost:11434/v1")

	casual, formal := g.GeneratePair(context.Background(), "hello")
	if casual != "casual: hello" {
		t.Fatalf("unexpected casual: %q", casual)
	}
	if formal != "formal: hello" {
		t.Fatalf("unexpected formal: %q", formal)
	}
}

func TestGeneratePair_ErrorClasses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error",
			err:  &openai.APIError{HTTPStatusCode: 500, Message: "boom"},
			want: "Error: completion API returned an error (500).",
		},
		{
			name: "request error",
			err:  &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")},
			want: "Error: completion API returned an error (502).",
		},
		{
			name: "connection error",
			err:  &url.Error{Op: "Post", URL: "http://localhost:11434/v1", Err: errors.New("connection refused")},
			want: "Error: could not connect to completion service at http://localhost:11434/v1.",
		},
		{
			name: "unexpected error",
			err:  errors.New("something odd"),
			want: "Error: an unexpected error occurred during generation.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGateway(failingProvider{err: tc.err}, "http://localhost:11434/v1")
			casual, formal := g.GeneratePair(context.Background(), "hello")
			if casual != tc.want {
				t.Fatalf("casual = %q, want %q", casual, tc.want)
			}
			if formal != tc.want {
				t.Fatalf("formal = %q, want %q", formal, tc.want)
			}
		})
	}
}

func TestOpenAIProvider_Chat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"rephrased"}}]}`)
	}))
	defer ts.Close()

	p, err := NewOpenAIProvider(ts.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	out, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if out != "rephrased" {
		t.Fatalf("unexpected content: %q", out)
	}
}

func TestOpenAIProvider_APIErrorSurfacesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer ts.Close()

	p, err := NewOpenAIProvider(ts.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	g := NewGateway(p, ts.URL)
	casual, _ := g.GeneratePair(context.Background(), "hello")
	if casual != "Error: completion API returned an error (500)." {
		t.Fatalf("unexpected casual: %q", casual)
	}
}

func TestNewOpenAIProvider_RequiresModel(t *testing.T) {
	if _, err := NewOpenAIProvider("http://localhost:11434/v1", "key", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.New("nope"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestMockProvider_Styles(t *testing.T) {
	p := NewMockProvider()

	out, err := p.Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "rephrase into a casual, friendly tone"},
		{Role: RoleUser, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if !strings.Contains(out, "casual") || !strings.Contains(out, "hello") {
		t.Fatalf("unexpected mock output: %q", out)
	}
}
