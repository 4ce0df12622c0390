package params

import "strings"

// FieldIssue is one validation problem, addressed by the path of the
// offending field inside the argument object.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every field issue found in one validation
// pass, so a caller sending three bad fields gets three diagnostics in a
// single response instead of fixing them one round-trip at a time.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Path + ": " + issue.Message
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}
