package models

import (
	"errors"
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingPaid      BookingStatus = "Paid"
	BookingCancelled BookingStatus = "Cancelled"
)

var ErrInvalidTransition = errors.New("invalid booking status transition")

// Terminal statuses admit no further client-side transition.
func (s BookingStatus) Terminal() bool {
	return s == BookingPaid || s == BookingCancelled
}

// Transition moves a booking along Pending -> Paid | Cancelled.
func (s BookingStatus) Transition(to BookingStatus) (BookingStatus, error) {
	if s == BookingPending && (to == BookingPaid || to == BookingCancelled) {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
}

type BookingRoom struct {
	BookingID int64 `json:"bookingId,omitempty"`
	RoomID    int64 `json:"roomId"`
	Room      *Room `json:"room,omitempty"`
}

type BookingCustomer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Booking is a persisted booking record as the backend returns it.
type Booking struct {
	ID             int64            `json:"id"`
	HotelID        int64            `json:"hotelId"`
	CustomerID     int64            `json:"customerId"`
	CheckInDate    string           `json:"checkInDate"`
	CheckOutDate   string           `json:"checkOutDate"`
	NumberOfGuests int              `json:"numberOfGuests"`
	TotalPrice     float64          `json:"totalPrice"`
	Status         BookingStatus    `json:"status"`
	SpecialRequest string           `json:"specialRequest,omitempty"`
	BookingRooms   []BookingRoom    `json:"bookingRooms,omitempty"`
	Customer       *BookingCustomer `json:"customer,omitempty"`
}

// BookingForm is the client-editable booking draft. RoomType is the
// zero-based index of the room type.
type BookingForm struct {
	HotelID        int64  `json:"hotelId"`
	RoomType       int    `json:"roomType"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfRooms  int    `json:"numberOfRooms"`
	NumberOfGuests int    `json:"numberOfGuests"`
	SpecialRequest string `json:"specialRequest,omitempty"`
}

// NewBookingForm returns a form with the defaults of an empty booking.
func NewBookingForm(hotelID int64) BookingForm {
	return BookingForm{HotelID: hotelID, NumberOfRooms: 1, NumberOfGuests: 1}
}

// BookingDraft is a locally saved form; never a source of truth.
type BookingDraft struct {
	BookingForm
	SavedAt time.Time `json:"savedAt"`
}

// BookingRequest is the body of POST /booking/add.
type BookingRequest struct {
	HotelID        int64  `json:"hotelId"`
	RoomType       int    `json:"roomType"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfRooms  int    `json:"numberOfRooms"`
	NumberOfGuests int    `json:"numberOfGuests"`
	SpecialRequest string `json:"specialRequest"`
}

// BookingUpdate is the body of PUT /booking/{id}.
type BookingUpdate struct {
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfGuests int    `json:"numberOfGuests"`
	SpecialRequest string `json:"specialRequest"`
}

// OwnerBooking joins an owner's booking with its payment, if any.
type OwnerBooking struct {
	Booking
	PaymentStatus string   `json:"paymentStatus"`
	Payment       *Payment `json:"payment,omitempty"`
}

const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Booked but Not Paid"
)
