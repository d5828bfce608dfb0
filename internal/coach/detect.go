// Package coach implements the conversation core: goal detection, rule-based
// slot extraction, profile validation, and the orchestrating service that
// decides per turn whether to keep chatting or finalize a roadmap.
package coach

import "strings"

// goalRule maps a keyword group to a canonical goal label. Rules are scanned
// in order and the first matching keyword wins, so the table order is part of
// the contract.
type goalRule struct {
	label    string
	keywords []string
}

var goalRules = []goalRule{
	{"Python Programming", []string{"python"}},
	{"Web Development", []string{"web dev", "web development", "frontend", "backend", "html", "css", "javascript", "js"}},
	{"Data Analysis", []string{"data analysis", "data analytics", "analytics", "data science"}},
	{"Machine Learning", []string{"machine learning", "ml", "ai"}},
	{"SQL and Databases", []string{"sql"}},
	{"UI/UX / Design", []string{"ui/ux", "ux design", "ui design", "graphic design"}},
}

// DetectGoal maps free text to a canonical goal label, case-insensitively.
// Falls back to a generic label when nothing matches.
func DetectGoal(text string) string {
	t := strings.ToLower(text)
	for _, rule := range goalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.label
			}
		}
	}
	return "Your learning goal"
}

// languageRule maps a single keyword to a proper-noun language name.
type languageRule struct {
	keyword string
	name    string
}

// languageRules is ordered; the first matching keyword wins.
var languageRules = []languageRule{
	{"python", "Python Programming"},
	{"javascript", "JavaScript"},
	{"js", "JavaScript"},
	{"typescript", "TypeScript"},
	{"java", "Java"},
	{"c++", "C++"},
	{"cpp", "C++"},
	{"c#", "C#"},
	{"csharp", "C#"},
	{"go", "Go"},
	{"golang", "Go"},
	{"rust", "Rust"},
	{"kotlin", "Kotlin"},
	{"swift", "Swift"},
	{"php", "PHP"},
	{"ruby", "Ruby"},
	{"r", "R"},
	{"sql", "SQL"},
	{"matlab", "MATLAB"},
	{"scala", "Scala"},
	{"perl", "Perl"},
}

// DetectLanguage maps free text to a programming language name for display
// enrichment. Unlike DetectGoal it reports false instead of falling back,
// since the result is an optional signal rather than a required slot.
func DetectLanguage(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, rule := range languageRules {
		if strings.Contains(t, rule.keyword) {
			return rule.name, true
		}
	}
	return "", false
}
