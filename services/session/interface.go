package session

import (
	"context"

	"hotelbook/models"
)

// SessionService is the session model as handlers see it.
type SessionService interface {
	Login(ctx context.Context, scope, email, password string) (*Navigation, error)
	RegisterCustomer(ctx context.Context, scope string, reg models.Registration) (*Navigation, error)
	RegisterHotelOwner(ctx context.Context, scope string, reg models.Registration) (*Navigation, error)
	UpdateProfile(ctx context.Context, scope string, upd models.ProfileUpdate) (string, error)
	Logout(ctx context.Context, scope string) error
	Current(ctx context.Context, scope string) (*models.Session, error)
	IsLoggedIn(ctx context.Context, scope string) bool
	GetUserRole(ctx context.Context, scope string) models.Role
	Authenticated(ctx context.Context, scope string) (*models.Session, error)
	Subscribe(ctx context.Context, scope string) (<-chan models.SessionView, func())
}

var _ SessionService = (*Manager)(nil)
