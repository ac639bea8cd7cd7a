// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. Data file lines carry password hashes (and,
// in files written by older versions, plaintext passwords), so anything read
// from disk goes through here before it reaches a log record.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
)

// Precompiled regex patterns
var (
	// bcrypt hashes, e.g. $2a$10$ followed by 53 salt+digest characters
	bcryptHashRegex = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)

	// Credentials
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s,]{3,}`)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// All patterns in the order they are applied
	patterns = []*regexp.Regexp{
		bcryptHashRegex, passwordRegex, unixPathRegex, winPathRegex, emailRegex, stackTraceRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		bcryptHashRegex: RedactedHashPlaceholder,
		passwordRegex:   RedactedCredentialPlaceholder,
		unixPathRegex:   RedactedPathPlaceholder,
		winPathRegex:    RedactedPathPlaceholder,
		emailRegex:      "[REDACTED_EMAIL]",
		stackTraceRegex: "[STACK_TRACE_REDACTED]",
	}

)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Fields joins a parsed record with commas for logging, replacing the fields
// at the given indexes with RedactedCredentialPlaceholder and running the
// remaining fields through String. Indexes beyond the record are ignored.
func Fields(record []string, sensitive ...int) string {
	hidden := make(map[int]bool, len(sensitive))
	for _, i := range sensitive {
		hidden[i] = true
	}

	out := make([]string, len(record))
	for i, field := range record {
		if hidden[i] {
			out[i] = RedactedCredentialPlaceholder
			continue
		}
		out[i] = String(field)
	}

	return strings.Join(out, ",")
}
