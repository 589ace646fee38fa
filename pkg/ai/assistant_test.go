package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"coursehub/pkg/domain"
)

type fakeGenerator struct {
	reply string
	err   error
	// captured inputs
	systemPrompt string
	userPrompt   string
	calls        int
}

func (g *fakeGenerator) GenerateText(_ context.Context, _, systemPrompt, userPrompt string) (string, error) {
	g.calls++
	g.systemPrompt = systemPrompt
	g.userPrompt = userPrompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestSendAppendsUserThenAssistant(t *testing.T) {
	gen := &fakeGenerator{reply: "Try the Go fundamentals course."}
	assistant := NewAssistant(gen, "gemini-1.5-flash")

	before := assistant.Transcript()
	if len(before) != 1 || before[0].Role != domain.ChatAssistant {
		t.Fatalf("expected greeting-only transcript, got %+v", before)
	}

	reply, err := assistant.Send(context.Background(), "What should I learn first?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != gen.reply {
		t.Fatalf("expected reply passthrough, got %q", reply)
	}

	after := assistant.Transcript()
	if len(after) != len(before)+2 {
		t.Fatalf("expected exactly two new turns, got %d -> %d", len(before), len(after))
	}
	user, asst := after[len(after)-2], after[len(after)-1]
	if user.Role != domain.ChatUser || user.Content != "What should I learn first?" {
		t.Fatalf("unexpected user turn: %+v", user)
	}
	if asst.Role != domain.ChatAssistant || asst.Content != gen.reply {
		t.Fatalf("unexpected assistant turn: %+v", asst)
	}
}

func TestFailedSendLeavesTranscriptUntouched(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	assistant := NewAssistant(gen, "gemini-1.5-flash")
	if _, err := assistant.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("seed send: %v", err)
	}
	before := assistant.Transcript()

	gen.err = ErrQuotaExceeded
	_, err := assistant.Send(context.Background(), "another question")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}

	after := assistant.Transcript()
	if len(after) != len(before) {
		t.Fatalf("failed send changed transcript length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("failed send changed turn %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestSendCarriesConversationContext(t *testing.T) {
	gen := &fakeGenerator{reply: "sure"}
	assistant := NewAssistant(gen, "gemini-1.5-flash")
	if _, err := assistant.Send(context.Background(), "I want to learn Go"); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if _, err := assistant.Send(context.Background(), "Which course?"); err != nil {
		t.Fatalf("second send: %v", err)
	}
	if !strings.Contains(gen.userPrompt, "I want to learn Go") {
		t.Fatalf("prompt misses earlier user turn:\n%s", gen.userPrompt)
	}
	if !strings.Contains(gen.userPrompt, "Current user message: Which course?") {
		t.Fatalf("prompt misses current message:\n%s", gen.userPrompt)
	}
	if gen.systemPrompt == "" {
		t.Fatalf("chat sends a system framing prompt")
	}
}

func TestClearReseedsGreeting(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	assistant := NewAssistant(gen, "gemini-1.5-flash")
	if _, err := assistant.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("send: %v", err)
	}

	calls := gen.calls
	assistant.Clear()
	transcript := assistant.Transcript()
	if len(transcript) != 1 || transcript[0].Role != domain.ChatAssistant {
		t.Fatalf("expected greeting-only transcript after clear, got %+v", transcript)
	}
	if gen.calls != calls {
		t.Fatalf("clear must not call the upstream")
	}
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	assistant := NewAssistant(&fakeGenerator{reply: "ok"}, "gemini-1.5-flash")
	if _, err := assistant.Send(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty message")
	}
}
