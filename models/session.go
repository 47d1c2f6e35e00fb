package models

import "time"

// Session is the record of the authenticated identity held for one scope.
type Session struct {
	Scope       string    `json:"scope"`
	Role        Role      `json:"role"`
	Token       string    `json:"token"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	OwnerID     *int64    `json:"hotelOwnerId,omitempty"`
	CustomerID  string    `json:"customerId,omitempty"` // decoded from the token
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`   // token expiry, zero when the token carries none
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LoggedIn is true iff a token is present.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// Expired reports whether the token has a known expiry in the past.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionView is what clients get to see of a session; the token stays server-side.
type SessionView struct {
	Scope       string `json:"scope"`
	LoggedIn    bool   `json:"loggedIn"`
	Role        string `json:"role"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	OwnerID     *int64 `json:"hotelOwnerId,omitempty"`
}

func (s *Session) View(scope string) SessionView {
	if !s.LoggedIn() {
		return SessionView{Scope: scope, Role: RoleNone.String()}
	}
	return SessionView{
		Scope:       scope,
		LoggedIn:    true,
		Role:        s.Role.String(),
		FullName:    s.FullName,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		OwnerID:     s.OwnerID,
	}
}
