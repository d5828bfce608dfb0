package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/llm"
)

// Responder produces the assistant's next message from the conversation
// history. The return shape is the same for every implementation: free text,
// or a profile exchange payload serialized as JSON.
type Responder interface {
	Respond(ctx context.Context, history []domain.Turn) (string, error)
}

// ModelResponder answers through the external language model.
type ModelResponder struct {
	client llm.Client
}

// NewModelResponder creates a Responder backed by a model client.
func NewModelResponder(client llm.Client) *ModelResponder {
	return &ModelResponder{client: client}
}

func (r *ModelResponder) Respond(ctx context.Context, history []domain.Turn) (string, error) {
	var lines []string
	for _, t := range history {
		prefix := "User"
		if t.Role == domain.RoleAssistant {
			prefix = "Assistant"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", prefix, t.Content))
	}

	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: coachInstructions,
		UserPrompt:   "Conversation so far:\n" + strings.Join(lines, "\n"),
	})
	if err != nil {
		return "", fmt.Errorf("model respond failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
