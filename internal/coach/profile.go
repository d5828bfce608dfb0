package coach

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/priyasinghal/skillpath/internal/domain"
	"github.com/priyasinghal/skillpath/internal/llm"
)

// ErrMalformedProfile indicates a profile candidate had a non-numeric hour or
// week value.
var ErrMalformedProfile = errors.New("malformed profile payload")

// ProfilePayload is the boundary exchange format shared by the rule engine
// and the external model: keys are fixed, weeks is clamped (never rejected)
// and level/language pass through as text.
type ProfilePayload struct {
	Language string `json:"language"`
	Level    string `json:"level"`
	Hours    int    `json:"hours"`
	Weeks    int    `json:"weeks"`
}

// requiredPayloadKeys must all be present before a candidate is considered.
var requiredPayloadKeys = []string{"language", "level", "hours", "weeks"}

// ValidateProfile turns a raw payload object into a validated Profile. The
// same validation applies whether the candidate came from the rule engine or
// from the external model's output.
func ValidateProfile(raw map[string]any) (domain.Profile, error) {
	hours, err := coerceInt(raw["hours"])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: hours: %v", ErrMalformedProfile, err)
	}
	weeks, err := coerceInt(raw["weeks"])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: weeks: %v", ErrMalformedProfile, err)
	}

	return domain.Profile{
		Goal:          stringValue(raw["language"]),
		Level:         stringValue(raw["level"]),
		HoursPerWeek:  hours,
		DurationWeeks: domain.ClampWeeks(weeks),
	}, nil
}

// ProfileFromText defensively scans free-form responder output for a profile
// payload. Every balanced brace-delimited candidate is tried in order; the
// first that parses as JSON, carries all four required keys, and validates
// wins. Failures are logged and skipped, never surfaced.
func ProfileFromText(text string, logger *slog.Logger) (domain.Profile, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, candidate := range llm.JSONCandidates(text) {
		var raw map[string]any
		if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
			logger.Debug("skipping unparseable profile candidate", "error", err)
			continue
		}
		if !hasRequiredKeys(raw) {
			continue
		}
		profile, err := ValidateProfile(raw)
		if err != nil {
			logger.Debug("skipping invalid profile candidate", "error", err)
			continue
		}
		return profile, true
	}

	return domain.Profile{}, false
}

func hasRequiredKeys(raw map[string]any) bool {
	for _, k := range requiredPayloadKeys {
		if _, ok := raw[k]; !ok {
			return false
		}
	}
	return true
}

// coerceInt converts a decoded JSON value to an int. Numeric strings are
// accepted; anything else is malformed.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(math.Trunc(n)), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", n.String())
		}
		return int(math.Trunc(f)), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("non-numeric value %v", v)
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
