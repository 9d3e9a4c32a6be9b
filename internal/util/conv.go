package util

import "strconv"

// ParseIntDefault parses query-string integers, falling back to def on
// absence or garbage and clamping negatives to the default.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
