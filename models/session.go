package models

// Session is the in-memory authentication state of the running client.
// It is never persisted.
type Session struct {
	Username string
}

// IsAuthenticated reports whether a user is logged in.
func (s Session) IsAuthenticated() bool {
	return s.Username != ""
}
