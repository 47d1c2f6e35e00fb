package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/wI2L/jsondiff"
	"go.uber.org/zap"

	"hotelbook/backend"
	"hotelbook/models"
)

var (
	ErrRoomNotFound = errors.New("room not found in hotel")
	ErrNotOwner     = errors.New("hotel belongs to another owner")
)

// Backend is the slice of the REST API the catalog needs.
type Backend interface {
	backend.HotelAPI
	backend.RoomAPI
	backend.ReviewAPI
}

// HotelDetails is a hotel card with its rooms and reviews fetched fresh.
type HotelDetails struct {
	models.HotelCard
	RoomTypes []string `json:"roomTypes"`
}

type Service struct {
	api    Backend
	logger *zap.Logger
}

func NewService(api Backend, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func cards(hotels []models.Hotel) []models.HotelCard {
	out := make([]models.HotelCard, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, models.NewHotelCard(h))
	}
	return out
}

func (s *Service) Hotels(ctx context.Context, token string) ([]models.HotelCard, error) {
	hotels, err := s.api.GetHotels(ctx, token)
	if err != nil {
		return nil, err
	}
	return cards(hotels), nil
}

func (s *Service) Search(ctx context.Context, token string, q models.HotelSearch) ([]models.HotelCard, error) {
	hotels, err := s.api.SearchHotels(ctx, token, q)
	if err != nil {
		return nil, err
	}
	return cards(hotels), nil
}

func (s *Service) Cities(ctx context.Context, prefix string) ([]string, error) {
	return s.api.GetCities(ctx, prefix)
}

// Details loads a hotel with its rooms and reviews concurrently.
func (s *Service) Details(ctx context.Context, token string, id int64) (*HotelDetails, error) {
	var (
		wg                 sync.WaitGroup
		hotel              *models.Hotel
		rooms              []models.Room
		reviews            []models.Review
		hotelErr, roomsErr error
		reviewsErr         error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		hotel, hotelErr = s.api.GetHotel(ctx, token, id)
	}()
	go func() {
		defer wg.Done()
		rooms, roomsErr = s.api.GetRooms(ctx, token, id)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = s.api.GetReviews(ctx, token, id)
	}()
	wg.Wait()

	if hotelErr != nil {
		return nil, hotelErr
	}
	if roomsErr != nil {
		s.logger.Warn("rooms unavailable for hotel details", zap.Int64("hotelId", id), zap.Error(roomsErr))
	} else {
		hotel.Rooms = rooms
	}
	if reviewsErr != nil {
		s.logger.Warn("reviews unavailable for hotel details", zap.Int64("hotelId", id), zap.Error(reviewsErr))
	} else {
		hotel.Reviews = reviews
	}

	details := &HotelDetails{HotelCard: models.NewHotelCard(*hotel), RoomTypes: []string{}}
	seen := map[models.RoomType]bool{}
	for _, r := range hotel.Rooms {
		if r.Type.Valid() && !seen[r.Type] {
			seen[r.Type] = true
			details.RoomTypes = append(details.RoomTypes, r.Type.String())
		}
	}
	return details, nil
}

func (s *Service) Rooms(ctx context.Context, token string, hotelID int64) ([]models.Room, error) {
	return s.api.GetRooms(ctx, token, hotelID)
}

func (s *Service) Reviews(ctx context.Context, token string, hotelID int64) ([]models.Review, error) {
	return s.api.GetReviews(ctx, token, hotelID)
}

func (s *Service) OwnerHotels(ctx context.Context, token string) ([]models.HotelCard, error) {
	hotels, err := s.api.GetHotelsByOwner(ctx, token)
	if err != nil {
		return nil, err
	}
	return cards(hotels), nil
}

func (s *Service) AddHotel(ctx context.Context, token string, in models.HotelInput) (*models.Hotel, error) {
	return s.api.AddHotel(ctx, token, in)
}

func (s *Service) DeleteHotel(ctx context.Context, sess *models.Session, id int64) error {
	if _, err := s.ownedHotel(ctx, sess, id); err != nil {
		return err
	}
	return s.api.DeleteHotel(ctx, sess.Token, id)
}

// ownedHotel fetches a hotel and checks it belongs to the session's owner,
// when the session knows its owner id.
func (s *Service) ownedHotel(ctx context.Context, sess *models.Session, id int64) (*models.Hotel, error) {
	hotel, err := s.api.GetHotel(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	if sess.OwnerID != nil && hotel.HotelOwnerID != 0 && hotel.HotelOwnerID != *sess.OwnerID {
		return nil, ErrNotOwner
	}
	return hotel, nil
}

// UpdateHotel overlays changes onto the hotel's editable fields and sends
// the difference as a JSON Patch. An empty patch sends nothing.
func (s *Service) UpdateHotel(ctx context.Context, sess *models.Session, id int64, changes json.RawMessage) (jsondiff.Patch, error) {
	hotel, err := s.ownedHotel(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	current := hotel.Editable()
	edited := current
	if err := json.Unmarshal(changes, &edited); err != nil {
		return nil, fmt.Errorf("decoding hotel changes: %w", err)
	}

	patch, err := jsondiff.Compare(current, edited)
	if err != nil {
		return nil, fmt.Errorf("diffing hotel %d: %w", id, err)
	}
	if len(patch) == 0 {
		return patch, nil
	}
	doc, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	if err := s.api.PatchHotel(ctx, sess.Token, id, doc); err != nil {
		return nil, err
	}
	s.logger.Info("hotel patched", zap.Int64("hotelId", id), zap.Int("ops", len(patch)))
	return patch, nil
}

// ownedRoom finds a room of a hotel the session's owner holds.
func (s *Service) ownedRoom(ctx context.Context, sess *models.Session, hotelID, roomID int64) (*models.Room, error) {
	if _, err := s.ownedHotel(ctx, sess, hotelID); err != nil {
		return nil, err
	}
	rooms, err := s.api.GetRooms(ctx, sess.Token, hotelID)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == roomID {
			return &rooms[i], nil
		}
	}
	return nil, ErrRoomNotFound
}

func (s *Service) AddRoom(ctx context.Context, sess *models.Session, hotelID int64, in models.RoomInput) (*models.Room, error) {
	if _, err := s.ownedHotel(ctx, sess, hotelID); err != nil {
		return nil, err
	}
	in.HotelID = hotelID
	return s.api.AddRoom(ctx, sess.Token, in)
}

// UpdateRoom works like UpdateHotel for one of the hotel's rooms.
func (s *Service) UpdateRoom(ctx context.Context, sess *models.Session, hotelID, roomID int64, changes json.RawMessage) (*models.Room, error) {
	room, err := s.ownedRoom(ctx, sess, hotelID, roomID)
	if err != nil {
		return nil, err
	}
	current := room.Editable()
	edited := current
	if err := json.Unmarshal(changes, &edited); err != nil {
		return nil, fmt.Errorf("decoding room changes: %w", err)
	}
	edited.HotelID = current.HotelID
	return s.patchRoom(ctx, sess.Token, room, current, edited)
}

// ToggleRoom flips a room's availability flag.
func (s *Service) ToggleRoom(ctx context.Context, sess *models.Session, hotelID, roomID int64) (*models.Room, error) {
	room, err := s.ownedRoom(ctx, sess, hotelID, roomID)
	if err != nil {
		return nil, err
	}
	current := room.Editable()
	edited := current
	edited.IsAvailable = !current.IsAvailable
	return s.patchRoom(ctx, sess.Token, room, current, edited)
}

func (s *Service) patchRoom(ctx context.Context, token string, room *models.Room, current, edited models.RoomInput) (*models.Room, error) {
	patch, err := jsondiff.Compare(current, edited)
	if err != nil {
		return nil, fmt.Errorf("diffing room %d: %w", room.ID, err)
	}
	if len(patch) == 0 {
		return room, nil
	}
	doc, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	updated, err := s.api.PatchRoom(ctx, token, room.ID, doc)
	if err != nil {
		return nil, err
	}
	if updated == nil || updated.ID == 0 {
		// The backend may answer 204; reflect the change locally.
		merged := *room
		merged.RoomNumber = edited.RoomNumber
		merged.Type = edited.Type
		merged.Description = edited.Description
		merged.PricePerNight = edited.PricePerNight
		merged.IsAvailable = edited.IsAvailable
		merged.Capacity = edited.Capacity
		updated = &merged
	}
	s.logger.Info("room patched", zap.Int64("roomId", room.ID), zap.Int("ops", len(patch)))
	return updated, nil
}

func (s *Service) DeleteRoom(ctx context.Context, sess *models.Session, hotelID, roomID int64) error {
	if _, err := s.ownedRoom(ctx, sess, hotelID, roomID); err != nil {
		return err
	}
	return s.api.DeleteRoom(ctx, sess.Token, roomID)
}

func (s *Service) AddReview(ctx context.Context, token string, req models.ReviewRequest) (*models.Review, error) {
	return s.api.AddReview(ctx, token, req)
}

func (s *Service) UpdateReview(ctx context.Context, token string, id int64, req models.ReviewRequest) (*models.Review, error) {
	return s.api.UpdateReview(ctx, token, id, req)
}

func (s *Service) DeleteReview(ctx context.Context, token string, id int64) error {
	return s.api.DeleteReview(ctx, token, id)
}
