package domain

import "time"

// Resource is one curated learning resource attached to a roadmap step.
// Values are copied out of the catalog at generation time so that later
// catalog edits never alter historical plans.
type Resource struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	LevelNote string `json:"level_note"`
}

// RoadmapStep is one week's worth of work in a generated plan. Week and Step
// increase together under the current one-step-per-week policy.
type RoadmapStep struct {
	Week      int        `json:"week"`
	Step      int        `json:"step"`
	Topic     string     `json:"topic"`
	Hours     int        `json:"hours"`
	Mode      string     `json:"mode"`
	Resources []Resource `json:"resources"`
}

// RoadmapPlan is a generated learning plan. Plans are immutable once created;
// regenerating produces a new plan rather than mutating an existing one.
type RoadmapPlan struct {
	ID            string
	UserID        string
	Goal          string
	Level         string
	HoursPerWeek  int
	DurationWeeks int
	Steps         []RoadmapStep
	CreatedAt     time.Time
}
