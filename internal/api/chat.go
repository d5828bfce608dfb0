package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/priyasinghal/skillpath/internal/db"
	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/repository"
)

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type chatResponse struct {
	Reply          string `json:"reply"`
	PlanReady      bool   `json:"plan_ready"`
	ConversationID string `json:"conversation_id,omitempty"`
	PlanID         string `json:"plan_id,omitempty"`
}

// Chat advances a conversation by one turn. The user message and the
// assistant reply are always recorded; when the turn completes a profile, the
// generated plan is persisted in the same transaction.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		JSON(w, http.StatusOK, chatResponse{Reply: "Please type a message first.", PlanReady: false})
		return
	}

	conversation, err := h.resolveConversation(r.Context(), user.ID, req.ConversationID)
	if err != nil {
		h.logger.Error("resolving conversation", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	stored, err := h.messages.ListByConversation(r.Context(), conversation.ID, user.ID)
	if err != nil {
		h.logger.Error("loading conversation history", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	history := append(domain.TurnsFromMessages(stored), domain.Turn{
		Role:    domain.RoleUser,
		Content: message,
	})

	outcome, err := h.coach.Advance(r.Context(), history)
	if err != nil {
		h.logger.Error("advancing conversation", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	now := time.Now().UTC()
	resp := chatResponse{
		Reply:          outcome.Reply,
		PlanReady:      outcome.PlanReady,
		ConversationID: conversation.ID,
	}

	err = h.uow.WithinTx(r.Context(), func(ctx context.Context, tx db.DBTX) error {
		msgs := repository.NewSQLiteMessageRepo(tx)
		convs := repository.NewSQLiteConversationRepo(tx)

		if err := msgs.Create(ctx, &domain.ChatMessage{
			ID:             uuid.NewString(),
			UserID:         user.ID,
			ConversationID: conversation.ID,
			Role:           domain.RoleUser,
			Content:        message,
			CreatedAt:      now,
		}); err != nil {
			return err
		}

		if outcome.PlanReady {
			plan := &domain.RoadmapPlan{
				ID:            uuid.NewString(),
				UserID:        user.ID,
				Goal:          outcome.Profile.Goal,
				Level:         outcome.Profile.Level,
				HoursPerWeek:  outcome.Profile.HoursPerWeek,
				DurationWeeks: outcome.Profile.DurationWeeks,
				Steps:         outcome.Steps,
				CreatedAt:     now,
			}
			if err := repository.NewSQLitePlanRepo(tx).Create(ctx, plan); err != nil {
				return err
			}
			resp.PlanID = plan.ID
		}

		if err := msgs.Create(ctx, &domain.ChatMessage{
			ID:             uuid.NewString(),
			UserID:         user.ID,
			ConversationID: conversation.ID,
			Role:           domain.RoleAssistant,
			Content:        outcome.Reply,
			CreatedAt:      now.Add(time.Millisecond),
		}); err != nil {
			return err
		}

		if conversation.Untitled() {
			conversation.Title = domain.TitleFromMessage(message)
		}
		conversation.UpdatedAt = now
		return convs.Update(ctx, conversation)
	})
	if err != nil {
		h.logger.Error("persisting chat turn", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusOK, resp)
}

// resolveConversation finds the target conversation for a chat turn: the
// requested one when it belongs to the user, otherwise the most recent one,
// otherwise a freshly created chat.
func (h *Handler) resolveConversation(ctx context.Context, userID, conversationID string) (*domain.Conversation, error) {
	if conversationID != "" {
		c, err := h.conversations.GetByID(ctx, conversationID, userID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	c, err := h.conversations.MostRecent(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	c = &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     domain.NewConversationTitle(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.conversations.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
