package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"coursehub/pkg/domain"
)

const (
	defaultHistoryLimit = 20

	greeting = "Hello! I'm your AI learning assistant. I can help you with course recommendations, study tips, learning paths, and more. How can I assist you today?"

	assistantSystemPrompt = "You are an AI learning assistant for CourseHub, a course selling platform. " +
		"Help users with their learning questions, course recommendations, and study advice. " +
		"Provide helpful, friendly responses that guide the user in their learning journey."
)

// TextGenerator generates text from a system prompt and user prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// Assistant is the chat bridge: it owns the rolling transcript and talks to
// the text-generation upstream. A failed call never leaves a fake assistant
// turn behind; the transcript only ever grows by a (user, assistant) pair.
type Assistant struct {
	mu           sync.Mutex
	gen          TextGenerator
	model        string
	historyLimit int
	transcript   []domain.ChatMessage
}

// NewAssistant seeds the transcript with the greeting turn.
func NewAssistant(gen TextGenerator, model string) *Assistant {
	a := &Assistant{
		gen:          gen,
		model:        model,
		historyLimit: defaultHistoryLimit,
	}
	a.reset()
	return a
}

func (a *Assistant) reset() {
	a.transcript = []domain.ChatMessage{
		{Role: domain.ChatAssistant, Content: greeting},
	}
}

// Transcript returns a copy of the conversation so far.
func (a *Assistant) Transcript() []domain.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.ChatMessage, len(a.transcript))
	copy(out, a.transcript)
	return out
}

// Clear resets the conversation to the single greeting turn. Pure client-side
// state, no upstream call.
func (a *Assistant) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()
}

// Send asks the assistant for a reply to message in the context of the
// running conversation. On success the user message and the reply are
// appended in that order; on failure the transcript is untouched.
func (a *Assistant) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	a.mu.Lock()
	prompt := buildChatPrompt(a.transcript, a.historyLimit, message)
	a.mu.Unlock()

	reply, err := a.gen.GenerateText(ctx, a.model, assistantSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.transcript = append(a.transcript,
		domain.ChatMessage{Role: domain.ChatUser, Content: message},
		domain.ChatMessage{Role: domain.ChatAssistant, Content: reply},
	)
	a.mu.Unlock()
	return reply, nil
}

func buildChatPrompt(transcript []domain.ChatMessage, historyLimit int, message string) string {
	history := transcript
	if historyLimit > 0 && len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	var b strings.Builder
	b.WriteString("Previous conversation:\n")
	for _, turn := range history {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
	}
	fmt.Fprintf(&b, "\nCurrent user message: %s\n", message)
	return b.String()
}

// Recommendations asks for course suggestions matching the user's interests,
// level, and goals. Used as a non-fatal dashboard enrichment.
func (a *Assistant) Recommendations(ctx context.Context, interests, level, goals string) (string, error) {
	prompt := fmt.Sprintf(
		"As an AI course advisor, recommend 5 courses based on the following criteria:\n\n"+
			"User Interests: %s\nUser Level: %s\nUser Goals: %s\n\n"+
			"Please provide:\n1. Course titles\n2. Brief descriptions\n3. Why these courses are recommended\n4. Learning path suggestions\n\n"+
			"Format the response in a structured way that's easy to read.",
		interests, level, goals,
	)
	return a.gen.GenerateText(ctx, a.model, "", prompt)
}

// EnhanceDescription rewrites a draft course description for instructors.
func (a *Assistant) EnhanceDescription(ctx context.Context, description, courseType, audience string) (string, error) {
	prompt := fmt.Sprintf(
		"Enhance this course description to make it more engaging and informative:\n\n"+
			"Basic Description: %s\nCourse Type: %s\nTarget Audience: %s\n\n"+
			"Please:\n1. Make it more compelling\n2. Add clear learning outcomes\n3. Include what students will gain\n4. Keep it concise but informative\n\n"+
			"Return only the enhanced description.",
		description, courseType, audience,
	)
	return a.gen.GenerateText(ctx, a.model, "", prompt)
}
