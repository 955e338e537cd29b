// Package helpers provides shared utility functions used across the application.
// These are generic helpers that don't belong to a specific domain package.
package helpers

import "strings"

// TruncateText shortens text to at most maxLen runes, adding "..." if truncated.
// Leading and trailing whitespace is trimmed first. A maxLen below 4 leaves
// the text untouched since there is no room for the ellipsis.
func TruncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if text == "" || maxLen < 4 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateURL shortens a URL or path to maxLen bytes for display purposes.
func TruncateURL(url string, maxLen int) string {
	if maxLen < 4 || len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}

// CountUniqueStrings returns the number of distinct non-empty strings in a slice.
func CountUniqueStrings(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		seen[item] = struct{}{}
	}
	return len(seen)
}

// EscapeTableCell escapes characters that break a Markdown table cell.
func EscapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "\n", " ")
}
