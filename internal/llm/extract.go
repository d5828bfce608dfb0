package llm

// JSONCandidates scans raw model output for every balanced { ... } block and
// returns them in order of appearance. Models are instructed to answer with a
// single bare JSON object, but in practice the object may be surrounded by
// prose, markdown fences, or stray braces; callers attempt to parse each
// candidate independently and skip the ones that fail.
func JSONCandidates(raw string) []string {
	var candidates []string

	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		block := scanBalancedBlock(raw[i:])
		if block == "" {
			// Unbalanced from this position; a later '{' may still close
			// (e.g. an unterminated quote earlier in the text).
			continue
		}
		candidates = append(candidates, block)
		i += len(block) - 1
	}

	return candidates
}

// scanBalancedBlock returns the shortest balanced { ... } prefix of s,
// respecting JSON string literals and escapes, or "" if s never balances.
func scanBalancedBlock(s string) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}
