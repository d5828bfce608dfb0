package catalog

import (
	"strings"

	"github.com/priyasinghal/skillpath/internal/domain"
)

// fallbackResources is returned when neither matching pass finds anything,
// including when the catalog itself is empty.
var fallbackResources = []domain.Resource{
	{
		Type:      "video",
		Title:     "How to Learn Anything Fast – Ali Abdaal",
		URL:       "https://www.youtube.com/watch?v=LPDhuthFD98",
		LevelNote: "general",
	},
	{
		Type:      "text",
		Title:     "Official Python Tutorial",
		URL:       "https://docs.python.org/3/tutorial/",
		LevelNote: "general",
	},
}

// Matcher selects catalog resources for a (goal, level, topic) triple.
// The catalog is injected at construction and treated as immutable.
type Matcher struct {
	catalog Catalog
}

// NewMatcher creates a Matcher over the given catalog.
func NewMatcher(c Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match returns resources for a roadmap topic. Passes apply in order and the
// first non-empty result wins:
//
//  1. strict: a category tag appears in the goal or in the topic, and the
//     entry level is "all", equals the requested level, or no level was asked
//  2. loose: a category tag appears in the goal, level ignored
//  3. the built-in generic fallback list
//
// Every returned resource is a copy; callers can never mutate the catalog
// through the result. Resources without a level note get one keyed to the
// requested level.
func (m *Matcher) Match(goal, level, topic string) []domain.Resource {
	g := strings.ToLower(goal)
	lvl := strings.ToLower(level)
	top := strings.ToLower(topic)

	var matched []domain.Resource

	for _, e := range m.catalog.entries {
		if categoryMatch(e.Categories, g, top) && levelMatch(e.Level, lvl) {
			matched = append(matched, resourceFromEntry(e))
		}
	}

	if len(matched) == 0 && m.catalog.Len() > 0 {
		for _, e := range m.catalog.entries {
			if categoryMatch(e.Categories, g, "") {
				matched = append(matched, resourceFromEntry(e))
			}
		}
	}

	if len(matched) == 0 {
		matched = append(matched, fallbackResources...)
	}

	for i := range matched {
		if matched[i].LevelNote == "" {
			matched[i].LevelNote = levelNote(lvl)
		}
	}

	return matched
}

func categoryMatch(categories []string, goal, topic string) bool {
	for _, cat := range categories {
		c := strings.ToLower(cat)
		if c == "" {
			continue
		}
		if strings.Contains(goal, c) {
			return true
		}
		if topic != "" && strings.Contains(topic, c) {
			return true
		}
	}
	return false
}

func levelMatch(entryLevel, requested string) bool {
	el := strings.ToLower(entryLevel)
	if el == "" {
		el = "all"
	}
	return el == "all" || el == requested || requested == ""
}

func resourceFromEntry(e Entry) domain.Resource {
	return domain.Resource{
		Type:      e.Type,
		Title:     e.Title,
		URL:       e.URL,
		LevelNote: e.LevelNote,
	}
}

func levelNote(level string) string {
	switch level {
	case "beginner":
		return "better for beginners"
	case "intermediate":
		return "good for intermediate learners"
	default:
		return "you can skim basics and focus on advanced parts"
	}
}
