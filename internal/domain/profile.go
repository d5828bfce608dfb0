package domain

const (
	// MinWeeks and MaxWeeks bound the duration of every validated profile.
	// Out-of-range values are clamped, never rejected.
	MinWeeks = 4
	MaxWeeks = 6

	DefaultHoursPerWeek  = 5
	DefaultDurationWeeks = 4
)

// Profile is the learning profile inferred from a conversation. A validated
// profile always satisfies MinWeeks <= DurationWeeks <= MaxWeeks.
type Profile struct {
	Goal          string
	Level         string
	HoursPerWeek  int
	DurationWeeks int
}

// ClampWeeks forces a week count into the [MinWeeks, MaxWeeks] range.
func ClampWeeks(weeks int) int {
	if weeks < MinWeeks {
		return MinWeeks
	}
	if weeks > MaxWeeks {
		return MaxWeeks
	}
	return weeks
}

// TotalHours is the overall time budget the roadmap must fit into.
func (p Profile) TotalHours() int {
	return p.HoursPerWeek * p.DurationWeeks
}
