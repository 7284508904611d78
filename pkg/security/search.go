package security

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxSearchQueryLength defines the maximum allowed length for land search queries
	MaxSearchQueryLength = 100
)

var (
	errQueryTooLong     = errors.New("search query too long")
	errQueryInvalidChar = errors.New("search query contains invalid characters")
)

// dangerousPatterns contains regex patterns that could indicate SQL injection or markup injection.
// Keywords are matched on word boundaries so place names such as "Dropmore" stay searchable.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|execute|truncate)\b`),
	regexp.MustCompile(`(?i)\b(or|and)\s+\d+\s*=\s*\d+`),
	regexp.MustCompile(`(--|/\*|\*/)`),
	regexp.MustCompile(`(?i)\b(waitfor|benchmark|sleep|pg_sleep)\b`),
	regexp.MustCompile(`(?i)(<script|</script|javascript:|vbscript:|onload=|onerror=)`),
}

// ValidateSearchQuery validates a free-text land search query and returns it trimmed.
func ValidateSearchQuery(query string) (string, error) {
	if query == "" {
		return "", nil
	}

	if len(query) > MaxSearchQueryLength {
		return "", errQueryTooLong
	}

	query = strings.TrimSpace(query)

	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(query) {
			return "", errQueryInvalidChar
		}
	}

	for _, char := range query {
		if !isValidSearchChar(char) {
			return "", errQueryInvalidChar
		}
	}

	return query, nil
}

// isValidSearchChar allows letters, digits, spaces and punctuation common in place names.
func isValidSearchChar(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsNumber(char) ||
		char == ' ' || char == '-' || char == '_' || char == '.' ||
		char == ',' || char == '#'
}

// SanitizeSearchString escapes LIKE wildcards
func SanitizeSearchString(query string) string {
	if query == "" {
		return ""
	}

	query = strings.ReplaceAll(query, `\`, `\\`)
	query = strings.ReplaceAll(query, "%", `\%`)
	query = strings.ReplaceAll(query, "_", `\_`)

	return query
}
