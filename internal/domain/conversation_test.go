package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromMessage(t *testing.T) {
	assert.Equal(t, "hello", TitleFromMessage("hello"))

	long := strings.Repeat("a", 60)
	got := TitleFromMessage(long)
	assert.Equal(t, strings.Repeat("a", 40)+"…", got)

	// Truncation counts runes, not bytes.
	multibyte := strings.Repeat("ä", 45)
	got = TitleFromMessage(multibyte)
	assert.Equal(t, strings.Repeat("ä", 40)+"…", got)
}

func TestUntitled(t *testing.T) {
	c := Conversation{Title: NewConversationTitle()}
	assert.True(t, c.Untitled())

	c.Title = "Python plan"
	assert.False(t, c.Untitled())
}

func TestLastUserContent(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleUser, Content: "second"},
		{Role: RoleAssistant, Content: "reply again"},
	}
	assert.Equal(t, "second", LastUserContent(turns))
	assert.Equal(t, "", LastUserContent(nil))
	assert.Equal(t, "", LastUserContent([]Turn{{Role: RoleAssistant, Content: "only me"}}))
}

func TestClampWeeks(t *testing.T) {
	assert.Equal(t, MinWeeks, ClampWeeks(0))
	assert.Equal(t, MinWeeks, ClampWeeks(3))
	assert.Equal(t, 4, ClampWeeks(4))
	assert.Equal(t, 5, ClampWeeks(5))
	assert.Equal(t, 6, ClampWeeks(6))
	assert.Equal(t, MaxWeeks, ClampWeeks(52))
}
