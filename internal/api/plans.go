package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/repository"
)

type planResponse struct {
	ID            string               `json:"id"`
	Goal          string               `json:"goal"`
	Level         string               `json:"level"`
	HoursPerWeek  int                  `json:"hours_per_week"`
	DurationWeeks int                  `json:"duration_weeks"`
	Steps         []domain.RoadmapStep `json:"steps"`
	CreatedAt     time.Time            `json:"created_at"`
}

// ListPlans returns the user's learning plans, newest first.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	plans, err := h.plans.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("listing plans", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planFromDomain(p))
	}
	JSON(w, http.StatusOK, out)
}

// GetPlan returns one learning plan by id, scoped to the owning user.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	planID := chi.URLParam(r, "id")

	plan, err := h.plans.GetByID(r.Context(), planID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			Error(w, http.StatusNotFound, "learning plan not found")
			return
		}
		h.logger.Error("loading plan", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusOK, planFromDomain(plan))
}

func planFromDomain(p *domain.RoadmapPlan) planResponse {
	return planResponse{
		ID:            p.ID,
		Goal:          p.Goal,
		Level:         p.Level,
		HoursPerWeek:  p.HoursPerWeek,
		DurationWeeks: p.DurationWeeks,
		Steps:         p.Steps,
		CreatedAt:     p.CreatedAt,
	}
}
