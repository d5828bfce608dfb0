package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyasinghal/skillpath/internal/domain"
)

// noResources satisfies ResourceMatcher without a catalog.
type noResources struct{}

func (noResources) Match(_, _, _ string) []domain.Resource { return nil }

func newTestGenerator() *Generator {
	return NewGenerator(noResources{})
}

func TestGenerate_BeginnerFullTemplate(t *testing.T) {
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "Python Programming",
		Level:         "Beginner",
		HoursPerWeek:  6,
		DurationWeeks: 6,
	})

	// 36 budget hours cover the full 24-hour template; six topics fill six weeks.
	require.Len(t, steps, 6)
	assert.Equal(t, "Python Programming – Fundamentals", steps[0].Topic)
	assert.Equal(t, "Capstone / Portfolio Piece in Python Programming", steps[5].Topic)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Week)
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, 4, s.Hours)
	}
}

func TestGenerate_IntermediateDropsFundamentals(t *testing.T) {
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "Web Development",
		Level:         "Intermediate",
		HoursPerWeek:  5,
		DurationWeeks: 5,
	})

	require.NotEmpty(t, steps)
	assert.Equal(t, "Core Concepts & Practice", steps[0].Topic)
	for _, s := range steps {
		assert.NotContains(t, s.Topic, "Fundamentals")
	}
}

func TestGenerate_AdvancedTemplate(t *testing.T) {
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "SQL and Databases",
		Level:         "Advanced",
		HoursPerWeek:  3,
		DurationWeeks: 6,
	})

	// 18 budget hours cover the 16-hour advanced template; three topics fill
	// weeks 1-3 and the remaining weeks carry no step.
	require.Len(t, steps, 3)
	assert.Equal(t, "Advanced concepts in SQL and Databases", steps[0].Topic)
	assert.Equal(t, 5, steps[0].Hours)
	assert.Equal(t, 5, steps[1].Hours)
	assert.Equal(t, 6, steps[2].Hours)
	assert.Equal(t, 3, steps[2].Week)
}

func TestGenerate_BudgetTrimsGreedily(t *testing.T) {
	// 2h x 5w = 10 budget hours: only the first two 4-hour topics fit.
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "Python Programming",
		Level:         "Beginner",
		HoursPerWeek:  2,
		DurationWeeks: 5,
	})

	require.Len(t, steps, 2)
	assert.Equal(t, "Python Programming – Fundamentals", steps[0].Topic)
	assert.Equal(t, "Core Concepts & Practice", steps[1].Topic)
}

func TestGenerate_TinyBudgetForcesFirstTopicCapped(t *testing.T) {
	// 3 budget hours fit no 4-hour topic; the first is forced in with its
	// hours capped so the roadmap is never empty.
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "Python Programming",
		Level:         "Beginner",
		HoursPerWeek:  0,
		DurationWeeks: 4,
	})

	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Week)
	assert.Equal(t, "Python Programming – Fundamentals", steps[0].Topic)
	assert.Equal(t, 0, steps[0].Hours)
}

func TestGenerate_ReclampsWeeks(t *testing.T) {
	steps := newTestGenerator().Generate(domain.Profile{
		Goal:          "Python Programming",
		Level:         "Beginner",
		HoursPerWeek:  10,
		DurationWeeks: 50,
	})

	// Duration collapses to 6 weeks regardless of the stored value.
	require.Len(t, steps, 6)
	assert.Equal(t, 6, steps[5].Week)
}

func TestGenerate_Deterministic(t *testing.T) {
	p := domain.Profile{
		Goal:          "Data Analysis",
		Level:         "Intermediate",
		HoursPerWeek:  4,
		DurationWeeks: 5,
	}

	g := newTestGenerator()
	first := g.Generate(p)
	second := g.Generate(p)
	assert.Equal(t, first, second)
}
