package booking

import (
	"strings"
	"time"

	"hotelbook/models"
	"hotelbook/utils"
)

const (
	maxGuests         = 10
	maxSpecialRequest = 500
)

// Stay is a validated booking form with parsed dates.
type Stay struct {
	Form     models.BookingForm
	RoomType models.RoomType
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights between check-in and check-out. Both dates are UTC midnights, so
// every day is exactly 24 hours long.
func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn) / (24 * time.Hour))
}

func (s Stay) request() models.BookingRequest {
	return models.BookingRequest{
		HotelID:        s.Form.HotelID,
		RoomType:       s.RoomType.Index(),
		CheckInDate:    s.CheckIn.Format(time.RFC3339),
		CheckOutDate:   s.CheckOut.Format(time.RFC3339),
		NumberOfRooms:  s.Form.NumberOfRooms,
		NumberOfGuests: s.Form.NumberOfGuests,
		SpecialRequest: strings.TrimSpace(s.Form.SpecialRequest),
	}
}

// Validate checks a booking form without touching availability. Date order
// is checked here so an inverted range never reaches the calendar.
func Validate(form models.BookingForm) (*Stay, error) {
	inputErr := newInputError()
	stay := &Stay{Form: form}

	if form.HotelID <= 0 {
		inputErr.addError("hotelId", "hotel is required")
	}

	roomType, err := models.RoomTypeFromIndex(form.RoomType)
	if err != nil {
		inputErr.addError("roomType", "select a valid room type")
	}
	stay.RoomType = roomType

	if form.NumberOfRooms < 1 {
		inputErr.addError("numberOfRooms", "at least one room is required")
	}
	if form.NumberOfGuests < 1 || form.NumberOfGuests > maxGuests {
		inputErr.addError("numberOfGuests", "number of guests must be between 1 and 10")
	}
	if len(form.SpecialRequest) > maxSpecialRequest {
		inputErr.addError("specialRequest", "special request must be at most 500 characters")
	}

	stay.CheckIn, stay.CheckOut = parseDates(inputErr, form.CheckInDate, form.CheckOutDate)

	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}
	return stay, nil
}

// parseDates records missing, unparseable and out-of-order dates on inputErr.
func parseDates(inputErr *InputError, checkIn, checkOut string) (time.Time, time.Time) {
	var in, out time.Time
	var err error

	if strings.TrimSpace(checkIn) == "" {
		inputErr.addError("checkInDate", "check-in date is required")
	} else if in, err = utils.ParseDate(checkIn); err != nil {
		inputErr.addError("checkInDate", "invalid date format, select a valid date")
	}

	if strings.TrimSpace(checkOut) == "" {
		inputErr.addError("checkOutDate", "check-out date is required")
	} else if out, err = utils.ParseDate(checkOut); err != nil {
		inputErr.addError("checkOutDate", "invalid date format, select a valid date")
	}

	if !in.IsZero() && !out.IsZero() && !in.Before(out) {
		inputErr.addError("checkOutDate", "check-out date must be after check-in date")
	}
	return in, out
}

// ValidateRange parses a stay's dates with the same rules as Validate.
func ValidateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	inputErr := newInputError()
	in, out := parseDates(inputErr, checkIn, checkOut)
	if inputErr.fieldsCount() > 0 {
		return time.Time{}, time.Time{}, inputErr
	}
	return in, out, nil
}

// ValidateUpdate applies the same date and guest rules to a booking edit.
func ValidateUpdate(upd models.BookingUpdate) (models.BookingUpdate, error) {
	inputErr := newInputError()
	if upd.NumberOfGuests < 1 || upd.NumberOfGuests > maxGuests {
		inputErr.addError("numberOfGuests", "number of guests must be between 1 and 10")
	}
	if len(upd.SpecialRequest) > maxSpecialRequest {
		inputErr.addError("specialRequest", "special request must be at most 500 characters")
	}
	in, out := parseDates(inputErr, upd.CheckInDate, upd.CheckOutDate)
	if inputErr.fieldsCount() > 0 {
		return upd, inputErr
	}
	upd.CheckInDate = in.Format(time.RFC3339)
	upd.CheckOutDate = out.Format(time.RFC3339)
	upd.SpecialRequest = strings.TrimSpace(upd.SpecialRequest)
	return upd, nil
}
