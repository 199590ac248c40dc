package domain

import (
	"strings"
)

// NormalizeName prepares an item name for grouping and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Stored names keep the user's spelling; only comparisons use this form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CleanName trims surrounding whitespace from a user-entered name.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}

// SplitLines splits multi-line input into trimmed, non-empty entries.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitList splits a comma-separated list into trimmed, non-empty entries.
func SplitList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
