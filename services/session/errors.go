package session

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUnknownRole        = errors.New("backend returned an unknown role")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session token has expired")
	ErrScopeRequired      = errors.New("session scope is required")
	ErrSealedRecord       = errors.New("session record could not be unsealed")
)
