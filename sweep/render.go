// Package sweep expands a job template over a list of parameter values
// and submits one rendered job per value to an external queue command.
package sweep

import "strings"

// Render replaces every occurrence of token in template with value.
// It is a pure function; the template text is never modified in place,
// so each call starts from the pristine template.
func Render(template, token, value string) string {
	return strings.ReplaceAll(template, token, value)
}

// TokenCount returns the number of occurrences of token in template.
// A count of zero means every rendered job would be identical to the
// template, which is usually a caller mistake worth flagging.
func TokenCount(template, token string) int {
	if token == "" {
		return 0
	}
	return strings.Count(template, token)
}
