package guard

import (
	"errors"

	"hotelbook/models"
)

// RedirectPath is where rejected navigations land.
const RedirectPath = "/"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("role not permitted")
)

var protectedViews = map[string]models.Role{
	"admin-dashboard":  models.RoleAdmin,
	"admin-my-account": models.RoleAdmin,
	"user-management":  models.RoleAdmin,

	"hotel-owner-dashboard":    models.RoleHotelOwner,
	"hotel-owner-my-account":   models.RoleHotelOwner,
	"hotel-owner-bookings":     models.RoleHotelOwner,
	"hotel-owner-rooms":        models.RoleHotelOwner,
	"hotel-owner-hotel-detail": models.RoleHotelOwner,

	"customer-dashboard": models.RoleCustomer,
	"my-account":         models.RoleCustomer,
	"my-bookings":        models.RoleCustomer,
}

var publicViews = map[string]bool{
	"landing":            true,
	"search":             true,
	"login":              true,
	"signup":             true,
	"hotel-owner-signup": true,
	"hotels":             true,
	"hotel-details":      true,
	"book":               true,
}

// RequiredRole reports the role a protected view needs.
func RequiredRole(view string) (models.Role, bool) {
	role, ok := protectedViews[view]
	return role, ok
}

func IsPublic(view string) bool {
	return publicViews[view]
}

// Decision is the outcome of a navigation attempt.
type Decision struct {
	Allowed  bool
	Redirect string
}

// CanActivate allows public views to anyone and protected views only to a
// logged-in session holding exactly the required role. Unknown views redirect.
func CanActivate(view string, loggedIn bool, role models.Role) Decision {
	if IsPublic(view) {
		return Decision{Allowed: true}
	}
	required, ok := RequiredRole(view)
	if ok && loggedIn && role == required {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: RedirectPath}
}

// Authorize is the API form of the same rule.
func Authorize(loggedIn bool, role, required models.Role) error {
	if !loggedIn {
		return ErrUnauthenticated
	}
	if role != required {
		return ErrForbidden
	}
	return nil
}
