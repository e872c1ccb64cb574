package store

import "strings"

// MatchGlob matches key against pattern using a single-wildcard glob: a
// pattern with exactly one '*' matches any key sharing its prefix and
// suffix around the star. A pattern with zero or more than one '*'
// falls back to a literal match against the pattern with every '*'
// stripped — a deliberately limited subset of Redis's full glob (no
// '?', no character classes, no escapes).
func MatchGlob(pattern, key string) bool {
	count := strings.Count(pattern, "*")
	switch count {
	case 0:
		return pattern == key
	case 1:
		i := strings.IndexByte(pattern, '*')
		prefix, suffix := pattern[:i], pattern[i+1:]
		if len(key) < len(prefix)+len(suffix) {
			return false
		}
		return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, suffix)
	default:
		return strings.ReplaceAll(pattern, "*", "") == key
	}
}
