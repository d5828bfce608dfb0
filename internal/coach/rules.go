package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/priyasinghal/skillpath/internal/domain"
)

// Keyword sets driving the rule engine. The intent set and the skill set
// overlap deliberately: mentioning a skill both signals learning intent and
// names the goal.
var (
	learningIntentKeywords = []string{
		"learn", "learning", "skill", "course", "class",
		"python", "javascript", "web dev", "web development",
		"programming", "coding", "frontend", "backend",
		"data analysis", "data science",
	}

	skillKeywords = []string{
		"python", "javascript", "web dev", "web development",
		"frontend", "backend", "html", "css", "data analysis",
		"data analytics", "data science", "sql", "ui/ux",
		"ux design", "ui design", "graphic design", "machine learning", "ml", "ai",
	}

	levelWords = []string{"beginner", "intermediate", "advanced"}

	greetingWords = []string{"hi", "hello", "hey"}

	boredomPhrases = []string{"bored", "waste time", "wasting time", "unproductive"}
)

var (
	hoursDetectRe  = regexp.MustCompile(`\b\d+\s*(hour|hours|hr|hrs)\b`)
	weeksDetectRe  = regexp.MustCompile(`\b\d+\s*(week|weeks)\b`)
	hoursExtractRe = regexp.MustCompile(`(\d+)\s*(hour|hours|hr|hrs)\b`)
	weeksExtractRe = regexp.MustCompile(`(\d+)\s*(week|weeks)\b`)
)

// RuleResponder is the deterministic fallback for the external model. It is
// stateless: every call re-derives the conversation state by rescanning the
// full history, which keeps it idempotent under partial or replayed history.
type RuleResponder struct{}

// NewRuleResponder creates the rule-based fallback responder.
func NewRuleResponder() *RuleResponder {
	return &RuleResponder{}
}

// Respond scans the history and returns either a clarifying/small-talk reply
// or, once all four slots (goal, level, hours, weeks) are present, the
// profile exchange payload serialized as JSON — the same return shape the
// external model uses.
func (r *RuleResponder) Respond(_ context.Context, history []domain.Turn) (string, error) {
	var userParts []string
	for _, t := range history {
		if t.Role == domain.RoleUser {
			userParts = append(userParts, strings.ToLower(t.Content))
		}
	}
	allUserText := strings.Join(userParts, " ")
	lastUserText := strings.ToLower(domain.LastUserContent(history))

	hasLearningIntent := containsAny(allUserText, learningIntentKeywords)
	hasGoal := containsAny(allUserText, skillKeywords)
	hasLevel := containsAny(allUserText, levelWords)
	hasTime := hoursDetectRe.MatchString(allUserText) && weeksDetectRe.MatchString(allUserText)

	if hasLearningIntent && hasGoal && hasLevel && hasTime {
		payload := extractPayload(allUserText)
		data, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("marshaling profile payload: %w", err)
		}
		return string(data), nil
	}

	if hasLearningIntent {
		if !hasGoal {
			return "Great, you want to learn something.\n" +
				"First, tell me what skill or goal you have in mind. " +
				"For example: 'Python programming', 'become a junior web developer', " +
				"'basics of data analysis', or something similar.", nil
		}
		if !hasLevel {
			return "Nice, that is a good goal.\n" +
				"How would you describe your current level in this area? " +
				"Beginner, Intermediate, or Advanced?", nil
		}
		if !hasTime {
			return "Got it. Now tell me roughly how many hours per week you can study, " +
				"and for how many weeks you want to follow a plan (ideally 4–6 weeks).", nil
		}
		return "Your learning direction is getting clear.\n" +
			"Once we have the exact skill, your level, and your time per week and weeks, " +
			"I will create a focused 4–6 week roadmap for you.", nil
	}

	if containsAny(lastUserText, greetingWords) {
		return "Hey, nice to meet you! How is life going these days? " +
			"Are you usually busy with work or studies, or more relaxed?", nil
	}

	if strings.Contains(lastUserText, "how are you") {
		return "I'm doing well, thanks for asking! How are you feeling these days? " +
			"Where does most of your time go – work, university, games, or just scrolling?", nil
	}

	if containsAny(lastUserText, boredomPhrases) {
		return "I get that, it feels bad when time just slips away.\n" +
			"If you want, we can slowly turn this into some kind of learning or skill-building routine " +
			"that fits your schedule. First, tell me a bit about your daily routine.", nil
	}

	return "Alright, I understand.\n" +
		"Tell me a little about your daily routine — when you wake up, work or study, " +
		"and when you usually have free time. Later, if you want to learn a skill, " +
		"we can design a plan that fits that routine.", nil
}

// extractPayload pulls the four slots out of the concatenated user text.
// Only called once all slot booleans are true, but each extraction still
// carries its own default.
func extractPayload(allUserText string) ProfilePayload {
	level := "beginner"
	if strings.Contains(allUserText, "intermediate") {
		level = "intermediate"
	} else if strings.Contains(allUserText, "advanced") {
		level = "advanced"
	}

	hours := domain.DefaultHoursPerWeek
	if m := hoursExtractRe.FindStringSubmatch(allUserText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			hours = n
		}
	}

	weeks := domain.DefaultDurationWeeks
	if m := weeksExtractRe.FindStringSubmatch(allUserText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			weeks = n
		}
	}

	return ProfilePayload{
		Language: DetectGoal(allUserText),
		Level:    capitalize(level),
		Hours:    hours,
		Weeks:    domain.ClampWeeks(weeks),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
