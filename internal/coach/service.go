package coach

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/roadmap"
)

// Outcome is the result of advancing a conversation by one turn: either a
// plain reply, or a finished roadmap together with its summary reply.
type Outcome struct {
	Reply     string
	PlanReady bool
	Profile   domain.Profile
	Steps     []domain.RoadmapStep
}

// Service orchestrates a chat turn: pick a responder, defensively scan its
// output for a profile payload, and when one appears validate it and generate
// the roadmap. Internal failures degrade to the rule-based path; the service
// always produces some usable reply.
type Service struct {
	model     Responder // nil when the external model is not configured
	fallback  Responder
	generator *roadmap.Generator
	logger    *slog.Logger
}

// NewService creates the conversation orchestrator. model may be nil, in
// which case every turn uses the rule-based fallback.
func NewService(model Responder, fallback Responder, generator *roadmap.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		model:     model,
		fallback:  fallback,
		generator: generator,
		logger:    logger,
	}
}

// Advance appends nothing and persists nothing: it is a pure function of the
// history, safe to call with partial or replayed conversations.
func (s *Service) Advance(ctx context.Context, history []domain.Turn) (*Outcome, error) {
	reply, err := s.respond(ctx, history)
	if err != nil {
		return nil, err
	}

	profile, ok := ProfileFromText(reply, s.logger)
	if !ok {
		// Free text, including any malformed or partial payload, is shown
		// to the user as-is.
		return &Outcome{Reply: reply}, nil
	}

	steps := s.generator.Generate(profile)
	summary := fmt.Sprintf(
		"Done! I have created a custom learning path for you focusing on %s at %s level, %d hours per week for %d weeks.",
		profile.Goal, profile.Level, profile.HoursPerWeek, profile.DurationWeeks,
	)

	return &Outcome{
		Reply:     summary,
		PlanReady: true,
		Profile:   profile,
		Steps:     steps,
	}, nil
}

func (s *Service) respond(ctx context.Context, history []domain.Turn) (string, error) {
	if s.model != nil {
		reply, err := s.model.Respond(ctx, history)
		if err == nil {
			return reply, nil
		}
		s.logger.Warn("model responder failed, falling back to rule engine", "error", err)
	}

	reply, err := s.fallback.Respond(ctx, history)
	if err != nil {
		return "", fmt.Errorf("rule responder failed: %w", err)
	}
	return reply, nil
}
