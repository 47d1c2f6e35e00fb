package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/models"
)

type fakeBackend struct {
	Backend // unimplemented methods panic

	hotel      models.Hotel
	rooms      []models.Room
	reviews    []models.Review
	roomsErr   error
	hotelPatch []byte
	roomPatch  []byte
	deleted    []int64
	hotelsGone []int64
}

func (f *fakeBackend) GetHotel(context.Context, string, int64) (*models.Hotel, error) {
	h := f.hotel
	return &h, nil
}

func (f *fakeBackend) GetRooms(context.Context, string, int64) ([]models.Room, error) {
	return f.rooms, f.roomsErr
}

func (f *fakeBackend) GetReviews(context.Context, string, int64) ([]models.Review, error) {
	return f.reviews, nil
}

func (f *fakeBackend) PatchHotel(_ context.Context, _ string, _ int64, patch []byte) error {
	f.hotelPatch = patch
	return nil
}

func (f *fakeBackend) PatchRoom(_ context.Context, _ string, _ int64, patch []byte) (*models.Room, error) {
	f.roomPatch = patch
	return &models.Room{}, nil
}

func (f *fakeBackend) DeleteRoom(_ context.Context, _ string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) DeleteHotel(_ context.Context, _ string, id int64) error {
	f.hotelsGone = append(f.hotelsGone, id)
	return nil
}

func owner(id int64) *models.Session {
	return &models.Session{Token: "tok", Role: models.RoleHotelOwner, OwnerID: &id}
}

type op struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

func decodePatch(t *testing.T, raw []byte) []op {
	t.Helper()
	var ops []op
	require.NoError(t, json.Unmarshal(raw, &ops))
	return ops
}

func TestUpdateHotelSendsOnlyChangedFields(t *testing.T) {
	be := &fakeBackend{hotel: models.Hotel{ID: 3, Name: "Harbour", City: "Porto", HotelOwnerID: 7}}
	svc := NewService(be, nil)

	patch, err := svc.UpdateHotel(context.Background(), owner(7), 3, json.RawMessage(`{"name":"Sea View"}`))
	require.NoError(t, err)
	assert.Len(t, patch, 1)

	ops := decodePatch(t, be.hotelPatch)
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
	assert.Equal(t, "/name", ops[0].Path)
	assert.JSONEq(t, `"Sea View"`, string(ops[0].Value))
}

func TestUpdateHotelNoChangeSendsNothing(t *testing.T) {
	be := &fakeBackend{hotel: models.Hotel{ID: 3, Name: "Harbour", HotelOwnerID: 7}}
	svc := NewService(be, nil)

	patch, err := svc.UpdateHotel(context.Background(), owner(7), 3, json.RawMessage(`{"name":"Harbour"}`))
	require.NoError(t, err)
	assert.Empty(t, patch)
	assert.Nil(t, be.hotelPatch)
}

func TestUpdateHotelRejectsOtherOwner(t *testing.T) {
	be := &fakeBackend{
		hotel: models.Hotel{ID: 3, HotelOwnerID: 42},
		rooms: []models.Room{{ID: 11, HotelID: 3, Type: models.StandardWithBalcony, PricePerNight: 90, IsAvailable: true}},
	}
	svc := NewService(be, nil)
	ctx := context.Background()

	_, err := svc.UpdateHotel(ctx, owner(7), 3, json.RawMessage(`{"name":"X"}`))
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = svc.AddRoom(ctx, owner(7), 3, models.RoomInput{RoomNumber: "12"})
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = svc.UpdateRoom(ctx, owner(7), 3, 11, json.RawMessage(`{"pricePerNight":1}`))
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = svc.ToggleRoom(ctx, owner(7), 3, 11)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.ErrorIs(t, svc.DeleteRoom(ctx, owner(7), 3, 11), ErrNotOwner)
	assert.ErrorIs(t, svc.DeleteHotel(ctx, owner(7), 3), ErrNotOwner)

	assert.Nil(t, be.hotelPatch)
	assert.Nil(t, be.roomPatch)
	assert.Empty(t, be.deleted)
	assert.Empty(t, be.hotelsGone)

	require.NoError(t, svc.DeleteHotel(ctx, owner(42), 3))
	assert.Equal(t, []int64{3}, be.hotelsGone)
}

func TestToggleRoom(t *testing.T) {
	be := &fakeBackend{rooms: []models.Room{{ID: 11, HotelID: 3, Type: models.StandardWithBalcony, IsAvailable: true}}}
	svc := NewService(be, nil)

	room, err := svc.ToggleRoom(context.Background(), owner(7), 3, 11)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	ops := decodePatch(t, be.roomPatch)
	require.Len(t, ops, 1)
	assert.Equal(t, "/isAvailable", ops[0].Path)
	assert.JSONEq(t, `false`, string(ops[0].Value))
}

func TestUpdateRoomKeepsHotel(t *testing.T) {
	be := &fakeBackend{rooms: []models.Room{{ID: 11, HotelID: 3, Type: models.StandardWithBalcony, PricePerNight: 90}}}
	svc := NewService(be, nil)

	room, err := svc.UpdateRoom(context.Background(), owner(7), 3, 11, json.RawMessage(`{"pricePerNight":110,"hotelId":99}`))
	require.NoError(t, err)
	assert.Equal(t, 110.0, room.PricePerNight)
	assert.Equal(t, int64(3), room.HotelID)

	ops := decodePatch(t, be.roomPatch)
	require.Len(t, ops, 1)
	assert.Equal(t, "/pricePerNight", ops[0].Path)
}

func TestRoomOperationsRequireKnownRoom(t *testing.T) {
	be := &fakeBackend{rooms: []models.Room{{ID: 11, HotelID: 3}}}
	svc := NewService(be, nil)

	_, err := svc.ToggleRoom(context.Background(), owner(7), 3, 12)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, svc.DeleteRoom(context.Background(), owner(7), 3, 12), ErrRoomNotFound)

	require.NoError(t, svc.DeleteRoom(context.Background(), owner(7), 3, 11))
	assert.Equal(t, []int64{11}, be.deleted)
}

func TestDetailsToleratesMissingRooms(t *testing.T) {
	be := &fakeBackend{
		hotel:    models.Hotel{ID: 3, City: "Porto", Country: "Portugal"},
		roomsErr: errors.New("down"),
		reviews:  []models.Review{{Rating: 3}},
	}
	d, err := NewService(be, nil).Details(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Equal(t, "Porto, Portugal", d.Location)
	assert.Equal(t, 1, d.ReviewsCount)
	assert.Empty(t, d.RoomTypes)
}

func TestDetailsListsRoomTypesOnce(t *testing.T) {
	be := &fakeBackend{
		hotel: models.Hotel{ID: 3},
		rooms: []models.Room{
			{Type: models.SuperiorWithBalcony, PricePerNight: 120},
			{Type: models.SuperiorWithBalcony, PricePerNight: 130},
			{Type: models.RoomTypeUnknown, PricePerNight: 200},
			{Type: models.StandardWithBalcony, PricePerNight: 80},
		},
	}
	d, err := NewService(be, nil).Details(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Superior With Balcony", "Standard With Balcony"}, d.RoomTypes)
	require.NotNil(t, d.PriceFrom)
	assert.Equal(t, 80.0, *d.PriceFrom)
}
