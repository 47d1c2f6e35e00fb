package models

import "strings"

// Role determines which views a session may reach.
type Role string

const (
	RoleNone       Role = ""
	RoleCustomer   Role = "Customer"
	RoleHotelOwner Role = "HotelOwner"
	RoleAdmin      Role = "Admin"
)

// ParseRole maps a backend role string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, true
	case "hotelowner", "hotel_owner", "owner":
		return RoleHotelOwner, true
	case "admin":
		return RoleAdmin, true
	}
	return RoleNone, false
}

// Privileged roles get their own scope when scope isolation is enabled.
func (r Role) Privileged() bool {
	return r == RoleHotelOwner || r == RoleAdmin
}

func (r Role) String() string {
	if r == RoleNone {
		return "None"
	}
	return string(r)
}
