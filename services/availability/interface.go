package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelbook/models"
)

var ErrNoRooms = errors.New("no rooms available for this hotel")

// RoomSource lists a hotel's rooms.
type RoomSource interface {
	GetRooms(ctx context.Context, token string, hotelID int64) ([]models.Room, error)
}

// DateChecker decides whether a single date can be booked.
type DateChecker interface {
	Available(ctx context.Context, date time.Time) (bool, error)
}

// Mode selects the DateChecker a Resolver uses.
type Mode string

const (
	// ModeSnapshot checks every date against the one room list fetched up front.
	ModeSnapshot Mode = "snapshot"
	// ModeRefetch asks the backend for the room list again for every date.
	ModeRefetch Mode = "refetch"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSnapshot, "":
		return ModeSnapshot, nil
	case ModeRefetch:
		return ModeRefetch, nil
	}
	return "", fmt.Errorf("unknown availability mode %q", s)
}
