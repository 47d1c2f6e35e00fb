package backend

import (
	"context"

	"hotelbook/models"
)

// AuthAPI covers the /Auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	RegisterCustomer(ctx context.Context, reg models.Registration) (*AuthResponse, error)
	RegisterHotelOwner(ctx context.Context, reg models.Registration) (*AuthResponse, error)
	UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (string, error)
	GetUsers(ctx context.Context, token string) ([]models.User, error)
}

type HotelAPI interface {
	GetHotels(ctx context.Context, token string) ([]models.Hotel, error)
	GetHotelsByOwner(ctx context.Context, token string) ([]models.Hotel, error)
	SearchHotels(ctx context.Context, token string, q models.HotelSearch) ([]models.Hotel, error)
	GetCities(ctx context.Context, prefix string) ([]string, error)
	GetHotel(ctx context.Context, token string, id int64) (*models.Hotel, error)
	AddHotel(ctx context.Context, token string, in models.HotelInput) (*models.Hotel, error)
	PatchHotel(ctx context.Context, token string, id int64, patch []byte) error
	DeleteHotel(ctx context.Context, token string, id int64) error
}

type RoomAPI interface {
	GetRooms(ctx context.Context, token string, hotelID int64) ([]models.Room, error)
	AddRoom(ctx context.Context, token string, in models.RoomInput) (*models.Room, error)
	PatchRoom(ctx context.Context, token string, id int64, patch []byte) (*models.Room, error)
	DeleteRoom(ctx context.Context, token string, id int64) error
}

type BookingAPI interface {
	AddBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
	GetCustomerBookings(ctx context.Context, token string) ([]models.Booking, error)
	GetOwnerBookings(ctx context.Context, token string, hotelIDs []int64) ([]models.Booking, error)
	GetHotelBookings(ctx context.Context, token string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, token string, id int64, upd models.BookingUpdate) error
	CancelBooking(ctx context.Context, token string, id int64) error
}

type PaymentAPI interface {
	ProcessPayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error)
	GetPaidBookings(ctx context.Context, token string) ([]models.Payment, error)
}

type ReviewAPI interface {
	GetReviews(ctx context.Context, token string, hotelID int64) ([]models.Review, error)
	AddReview(ctx context.Context, token string, req models.ReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, token string, id int64, req models.ReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, token string, id int64) error
}

// API is the whole backend surface the gateway uses.
type API interface {
	AuthAPI
	HotelAPI
	RoomAPI
	BookingAPI
	PaymentAPI
	ReviewAPI
}

var _ API = (*Client)(nil)
