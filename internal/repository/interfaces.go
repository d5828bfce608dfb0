package repository

import (
	"context"
	"errors"
	"time"

	"github.com/priyasinghal/skillpath/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist (or is not
// visible to the requesting user).
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthSessionRepo interface {
	Create(ctx context.Context, s *domain.AuthSession) error
	GetByID(ctx context.Context, id string) (*domain.AuthSession, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ConversationRepo interface {
	Create(ctx context.Context, c *domain.Conversation) error
	GetByID(ctx context.Context, id, userID string) (*domain.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Conversation, error)
	// MostRecent returns the user's most recently updated conversation.
	MostRecent(ctx context.Context, userID string) (*domain.Conversation, error)
	Update(ctx context.Context, c *domain.Conversation) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListByConversation(ctx context.Context, conversationID, userID string) ([]*domain.ChatMessage, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.RoadmapPlan) error
	GetByID(ctx context.Context, id, userID string) (*domain.RoadmapPlan, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RoadmapPlan, error)
}
