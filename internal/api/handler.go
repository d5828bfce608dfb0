// Package api provides the HTTP handlers for the skillpath API.
package api

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/priyasinghal/skillpath/internal/coach"
	"github.com/priyasinghal/skillpath/internal/db"
	"github.com/priyasinghal/skillpath/internal/repository"
)

// Handler carries the shared dependencies of all API endpoints.
type Handler struct {
	users         repository.UserRepo
	authSessions  repository.AuthSessionRepo
	conversations repository.ConversationRepo
	messages      repository.MessageRepo
	plans         repository.PlanRepo
	uow           db.UnitOfWork
	coach         *coach.Service
	sessionTTL    time.Duration
	dev           bool
	logger        *slog.Logger
}

// NewHandler creates a Handler over a database connection. Read paths use
// connection-scoped repositories; the chat endpoint creates tx-scoped ones
// through the unit of work.
func NewHandler(database *sql.DB, coachSvc *coach.Service, sessionTTL time.Duration, dev bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		users:         repository.NewSQLiteUserRepo(database),
		authSessions:  repository.NewSQLiteAuthSessionRepo(database),
		conversations: repository.NewSQLiteConversationRepo(database),
		messages:      repository.NewSQLiteMessageRepo(database),
		plans:         repository.NewSQLitePlanRepo(database),
		uow:           db.NewSQLiteUnitOfWork(database),
		coach:         coachSvc,
		sessionTTL:    sessionTTL,
		dev:           dev,
		logger:        logger,
	}
}

// RegisterRoutes mounts all API endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Post("/api/auth/logout", h.Logout)
		r.Get("/api/me", h.Me)
		r.Get("/api/conversations", h.ListConversations)
		r.Post("/api/conversations", h.CreateConversation)
		r.Get("/api/conversations/{id}/messages", h.ListMessages)
		r.Post("/api/chat", h.Chat)
		r.Get("/api/plans", h.ListPlans)
		r.Get("/api/plans/{id}", h.GetPlan)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
