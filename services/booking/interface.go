package booking

import (
	"context"

	"hotelbook/backend"
	"hotelbook/models"
	"hotelbook/services/availability"
)

// Calendars resolves availability for a hotel's room type.
type Calendars interface {
	Resolve(ctx context.Context, token string, hotelID int64, roomType models.RoomType) (*availability.Calendar, error)
}

// Backend is the slice of the REST API bookings need.
type Backend interface {
	backend.BookingAPI
	backend.PaymentAPI
	GetHotelsByOwner(ctx context.Context, token string) ([]models.Hotel, error)
}

// BookingService drives booking submission and the booking lifecycle.
type BookingService interface {
	Submit(ctx context.Context, sess *models.Session, form models.BookingForm) (*models.Booking, error)
	Update(ctx context.Context, sess *models.Session, id int64, upd models.BookingUpdate) error
	Pay(ctx context.Context, sess *models.Session, id int64, method string) (*models.Payment, error)
	Cancel(ctx context.Context, sess *models.Session, id int64) error
	MyBookings(ctx context.Context, sess *models.Session) ([]models.Booking, error)
	OwnerBookings(ctx context.Context, sess *models.Session, paidOnly bool) ([]models.OwnerBooking, error)

	SaveDraft(ctx context.Context, scope string, form models.BookingForm) (*models.BookingDraft, error)
	Drafts(ctx context.Context, scope string) ([]models.BookingDraft, error)
	ClearDrafts(ctx context.Context, scope string) error
}

var _ BookingService = (*DefaultBookingService)(nil)
