// Package roadmap turns a validated learning profile into an ordered,
// time-boxed sequence of weekly steps. Generation is a pure function of the
// profile (plus the injected resource matcher), so regenerating with the same
// inputs yields the same roadmap.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/priyasinghal/skillpath/internal/domain"
)

// topicTemplate is one candidate topic with its nominal hour cost.
type topicTemplate struct {
	topic string
	hours int
	mode  string
}

// ResourceMatcher attaches catalog resources to a topic.
type ResourceMatcher interface {
	Match(goal, level, topic string) []domain.Resource
}

// Generator builds roadmaps from profiles.
type Generator struct {
	matcher ResourceMatcher
}

// NewGenerator creates a Generator using the given resource matcher.
func NewGenerator(matcher ResourceMatcher) *Generator {
	return &Generator{matcher: matcher}
}

// Generate produces the step sequence for a profile. Weeks are defensively
// re-clamped to [4,6]. The level-specific topic template is trimmed to the
// total hour budget (hours/week × weeks): when the budget doesn't cover the
// whole template, topics are accepted greedily in order while they fit, and
// if not even the first topic fits it is force-included with its hours capped
// to the budget so a roadmap is never empty. Topics map to sequential weeks
// starting at week 1; when topics run out before the final week, trailing
// weeks simply carry no step.
func (g *Generator) Generate(p domain.Profile) []domain.RoadmapStep {
	weeks := domain.ClampWeeks(p.DurationWeeks)
	totalHours := p.HoursPerWeek * weeks

	topics := templateForLevel(p.Goal, p.Level)

	estimatedSum := 0
	for _, t := range topics {
		estimatedSum += t.hours
	}

	var chosen []topicTemplate
	if totalHours < estimatedSum {
		used := 0
		for _, t := range topics {
			if used+t.hours > totalHours {
				break
			}
			chosen = append(chosen, t)
			used += t.hours
		}
		if len(chosen) == 0 {
			first := topics[0]
			if first.hours > totalHours {
				first.hours = totalHours
			}
			chosen = []topicTemplate{first}
		}
	} else {
		chosen = topics
	}

	steps := make([]domain.RoadmapStep, 0, len(chosen))
	for week := 1; week <= weeks; week++ {
		if len(steps) >= len(chosen) {
			break
		}
		t := chosen[len(steps)]
		steps = append(steps, domain.RoadmapStep{
			Week:      week,
			Step:      len(steps) + 1,
			Topic:     t.topic,
			Hours:     t.hours,
			Mode:      t.mode,
			Resources: g.matcher.Match(p.Goal, p.Level, t.topic),
		})
	}

	return steps
}

// templateForLevel returns the base topic list for a skill level, with topic
// names interpolating the goal. Beginner is the default.
func templateForLevel(goal, level string) []topicTemplate {
	base := []topicTemplate{
		{fmt.Sprintf("%s – Fundamentals", goal), 4, "videos + small exercises"},
		{"Core Concepts & Practice", 4, "guided exercises"},
		{"Applied Practice & Mini Tasks", 4, "practice problems"},
		{fmt.Sprintf("Project-Oriented %s", goal), 4, "mini project"},
		{fmt.Sprintf("Deepening %s Skills", goal), 4, "tutorial + implementation"},
		{fmt.Sprintf("Capstone / Portfolio Piece in %s", goal), 4, "project work"},
	}

	switch strings.ToLower(level) {
	case "intermediate":
		return base[1:]
	case "advanced":
		return []topicTemplate{
			{fmt.Sprintf("Advanced concepts in %s", goal), 5, "reading + coding"},
			{fmt.Sprintf("Best practices, patterns & optimization (%s)", goal), 5, "experiments"},
			{fmt.Sprintf("Capstone / real-world style project in %s", goal), 6, "project"},
		}
	default:
		return base
	}
}
