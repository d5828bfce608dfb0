package coach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/llm"
)

// fakeClient records the generate request and returns a canned reply.
type fakeClient struct {
	lastReq llm.GenerateRequest
	text    string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return true }

func TestModelResponder_FormatsHistory(t *testing.T) {
	client := &fakeClient{text: "  sure, what level?  "}
	r := NewModelResponder(client)

	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "hi"},
		{Role: domain.RoleAssistant, Content: "Hey!"},
		{Role: domain.RoleUser, Content: "I want to learn Python"},
	}

	reply, err := r.Respond(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "sure, what level?", reply, "surrounding whitespace is trimmed")

	assert.Equal(t,
		"Conversation so far:\nUser: hi\nAssistant: Hey!\nUser: I want to learn Python",
		client.lastReq.UserPrompt)
	assert.NotEmpty(t, client.lastReq.SystemPrompt)
	assert.Contains(t, client.lastReq.SystemPrompt, "learning coach")
}

func TestModelResponder_PropagatesError(t *testing.T) {
	client := &fakeClient{err: llm.ErrTimeout}
	r := NewModelResponder(client)

	_, err := r.Respond(context.Background(), userTurns("hi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrTimeout)
}
