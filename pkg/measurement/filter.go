package measurement

import "strings"

// FilterOut returns a new map without the keys matching any of the patterns.
// Supports wildcard patterns:
//   - "prefix*" matches keys starting with "prefix"
//   - "*suffix" matches keys ending with "suffix"
//   - "*contains*" matches keys containing "contains"
//   - "exact" matches keys exactly
func FilterOut(readings map[string]Reading, patterns []string) map[string]Reading {
	result := make(map[string]Reading, len(readings))
	for key, value := range readings {
		if !matchesAny(key, patterns) {
			result[key] = value
		}
	}
	return result
}

func matchesAny(key string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(key, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a key matches a wildcard pattern. Wildcards are
// only honored at the ends of the pattern.
func matchesPattern(key, pattern string) bool {
	lead := strings.HasPrefix(pattern, "*")
	trail := len(pattern) > 1 && strings.HasSuffix(pattern, "*")
	core := strings.TrimSuffix(strings.TrimPrefix(pattern, "*"), "*")

	switch {
	case pattern == "*":
		return true
	case lead && trail:
		return strings.Contains(key, core)
	case lead:
		return strings.HasSuffix(key, core)
	case trail:
		return strings.HasPrefix(key, core)
	default:
		return key == pattern
	}
}
