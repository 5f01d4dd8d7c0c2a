package itksn

// IssueAt creates a single-entry Issues at the given path with provided code,
// byte offset and params. This is a convenience helper to improve
// readability at call sites that fail immediately.
func IssueAt(p PathRef, code string, offset int, kv ...any) error {
	return Issues{p.Issue(code, offset, kv...)}
}
