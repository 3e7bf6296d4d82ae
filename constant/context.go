package constant

type contextKey string

// SessionKey carries the session snapshot through request contexts.
const SessionKey contextKey = "session"
