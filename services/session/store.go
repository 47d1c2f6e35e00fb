package session

import (
	"context"

	"hotelbook/models"
)

// Store persists one session per scope. Get returns (nil, nil) for an
// empty scope. Writes are visible to the next read of the same scope.
type Store interface {
	Get(ctx context.Context, scope string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, scope string) error
}
