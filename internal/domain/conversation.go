package domain

import "time"

const defaultConversationTitle = "New chat"

type Conversation struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewConversationTitle returns the placeholder title of a freshly created chat.
func NewConversationTitle() string {
	return defaultConversationTitle
}

// Untitled reports whether the conversation still carries the placeholder title.
func (c *Conversation) Untitled() bool {
	return c.Title == defaultConversationTitle
}

// TitleFromMessage derives a conversation title from the first user message,
// truncated to 40 runes with an ellipsis.
func TitleFromMessage(content string) string {
	runes := []rune(content)
	if len(runes) > 40 {
		return string(runes[:40]) + "…"
	}
	return content
}

// ChatMessage is a single turn in a conversation. Messages are immutable once
// created; their insertion order defines the conversational context window.
type ChatMessage struct {
	ID             string
	UserID         string
	ConversationID string
	Role           Role
	Content        string
	CreatedAt      time.Time
}

// Turn is the minimal role+content view of a message handed to responders.
type Turn struct {
	Role    Role
	Content string
}

// TurnsFromMessages projects stored messages into responder turns.
func TurnsFromMessages(msgs []*ChatMessage) []Turn {
	turns := make([]Turn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}

// LastUserContent returns the content of the most recent user turn, or ""
// if the history contains none.
func LastUserContent(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			return turns[i].Content
		}
	}
	return ""
}
