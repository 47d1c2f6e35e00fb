package availability

import (
	"context"
	"time"

	"hotelbook/models"
)

// hasAvailableRoom is true iff some room of the type is present and flagged available.
func hasAvailableRoom(rooms []models.Room, roomType models.RoomType) bool {
	if !roomType.Valid() {
		return false
	}
	for _, r := range rooms {
		if r.Type == roomType && r.IsAvailable {
			return true
		}
	}
	return false
}

type snapshotChecker struct {
	available bool
}

func newSnapshotChecker(rooms []models.Room, roomType models.RoomType) snapshotChecker {
	return snapshotChecker{available: hasAvailableRoom(rooms, roomType)}
}

func (s snapshotChecker) Available(context.Context, time.Time) (bool, error) {
	return s.available, nil
}

type refetchChecker struct {
	rooms    RoomSource
	token    string
	hotelID  int64
	roomType models.RoomType
}

func (r refetchChecker) Available(ctx context.Context, _ time.Time) (bool, error) {
	rooms, err := r.rooms.GetRooms(ctx, r.token, r.hotelID)
	if err != nil {
		return false, err
	}
	return hasAvailableRoom(rooms, r.roomType), nil
}
