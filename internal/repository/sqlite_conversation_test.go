package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/testutil"
)

func seedConversation(t *testing.T, repo *SQLiteConversationRepo, userID string, updatedAt time.Time) *domain.Conversation {
	t.Helper()
	c := &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     domain.NewConversationTitle(),
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestSQLiteConversationRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	c := seedConversation(t, convos, u.ID, time.Now().UTC().Truncate(time.Second))

	got, err := convos.GetByID(ctx, c.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "New chat", got.Title)
	assert.True(t, got.Untitled())
}

// Conversations are scoped per user: another user's id never resolves them.
func TestSQLiteConversationRepo_UserScoping(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	owner := seedUser(t, users)
	other := seedUser(t, users)
	c := seedConversation(t, convos, owner.ID, time.Now().UTC())

	_, err := convos.GetByID(ctx, c.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := convos.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLiteConversationRepo_MostRecent(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	base := time.Now().UTC().Truncate(time.Second)

	seedConversation(t, convos, u.ID, base.Add(-2*time.Hour))
	newest := seedConversation(t, convos, u.ID, base)
	seedConversation(t, convos, u.ID, base.Add(-time.Hour))

	got, err := convos.MostRecent(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got.ID)

	_, err = convos.MostRecent(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteConversationRepo_UpdateTitleAndTouch(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	base := time.Now().UTC().Truncate(time.Second)
	c := seedConversation(t, convos, u.ID, base)

	c.Title = domain.TitleFromMessage("I want to learn Python")
	c.UpdatedAt = base.Add(time.Minute)
	require.NoError(t, convos.Update(ctx, c))

	got, err := convos.GetByID(ctx, c.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "I want to learn Python", got.Title)
	assert.False(t, got.Untitled())
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestSQLiteConversationRepo_ListOrdersByRecency(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	base := time.Now().UTC().Truncate(time.Second)
	old := seedConversation(t, convos, u.ID, base.Add(-time.Hour))
	recent := seedConversation(t, convos, u.ID, base)

	list, err := convos.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, old.ID, list[1].ID)
}

func TestSQLiteMessageRepo_OrderAndScoping(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	messages := NewSQLiteMessageRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	other := seedUser(t, users)
	base := time.Now().UTC().Truncate(time.Second)
	c := seedConversation(t, convos, u.ID, base)

	contents := []struct {
		role    domain.Role
		content string
		at      time.Time
	}{
		{domain.RoleUser, "hi", base},
		{domain.RoleAssistant, "Hey, nice to meet you!", base.Add(time.Second)},
		{domain.RoleUser, "I want to learn Python", base.Add(2 * time.Second)},
	}
	for _, m := range contents {
		require.NoError(t, messages.Create(ctx, &domain.ChatMessage{
			ID:             uuid.NewString(),
			UserID:         u.ID,
			ConversationID: c.ID,
			Role:           m.role,
			Content:        m.content,
			CreatedAt:      m.at,
		}))
	}

	got, err := messages.ListByConversation(ctx, c.ID, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "hi", got[0].Content)
	assert.Equal(t, domain.RoleAssistant, got[1].Role)
	assert.Equal(t, "I want to learn Python", got[2].Content)

	// Another user sees nothing in this conversation.
	scoped, err := messages.ListByConversation(ctx, c.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, scoped)
}

// The role column enforces the canonical role set.
func TestSQLiteMessageRepo_RejectsUnknownRole(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convos := NewSQLiteConversationRepo(database)
	messages := NewSQLiteMessageRepo(database)
	ctx := context.Background()

	u := seedUser(t, users)
	c := seedConversation(t, convos, u.ID, time.Now().UTC())

	err := messages.Create(ctx, &domain.ChatMessage{
		ID:             uuid.NewString(),
		UserID:         u.ID,
		ConversationID: c.ID,
		Role:           domain.Role("system"),
		Content:        "x",
		CreatedAt:      time.Now().UTC(),
	})
	assert.Error(t, err)
}
