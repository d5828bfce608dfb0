package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/repository"
)

type conversationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ListConversations returns the user's chats, most recently updated first.
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	convs, err := h.conversations.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("listing conversations", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]conversationResponse, 0, len(convs))
	for _, c := range convs {
		out = append(out, conversationResponse{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	JSON(w, http.StatusOK, out)
}

// CreateConversation starts a new chat.
func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	now := time.Now().UTC()
	c := &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Title:     domain.NewConversationTitle(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.conversations.Create(r.Context(), c); err != nil {
		h.logger.Error("creating conversation", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusCreated, conversationResponse{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
}

// ListMessages returns the ordered message history of one conversation.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	conversationID := chi.URLParam(r, "id")

	if _, err := h.conversations.GetByID(r.Context(), conversationID, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			Error(w, http.StatusNotFound, "conversation not found")
			return
		}
		h.logger.Error("loading conversation", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	msgs, err := h.messages.ListByConversation(r.Context(), conversationID, user.ID)
	if err != nil {
		h.logger.Error("listing messages", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	JSON(w, http.StatusOK, out)
}
