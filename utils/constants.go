// File: utils/constants.go
package utils

// ScopeHeader carries the session scope (one per browser tab).
const ScopeHeader = "X-Session-Scope"

// ScopeCookie is the fallback carrier for the session scope.
const ScopeCookie = "hb_scope"

// SessionKeyPrefix is the prefix used for Redis session keys.
const SessionKeyPrefix = "session:"

// DraftKeyPrefix is the prefix used for Redis booking draft lists.
const DraftKeyPrefix = "drafts:"

// DateLayout is the calendar date format exchanged with clients.
const DateLayout = "2006-01-02"

// Gin context keys.
const (
	ContextScopeKey   = "scope"
	ContextSessionKey = "session"
	ContextLoggerKey  = "logger"
)
