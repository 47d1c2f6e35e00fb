package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotelbook/utils"
)

var (
	ErrLoginRequired      = errors.New("please log in to book a room")
	ErrCustomerRequired   = errors.New("only customers can book rooms")
	ErrCustomerIDMissing  = errors.New("unable to book: customer id not found in token")
	ErrUnknownPaymentType = errors.New("unsupported payment method")
	ErrBookingNotFound    = errors.New("booking not found among your bookings")
)

// InputError collects field-level validation failures.
type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{fields: make(map[string][]string)}
}

// IsInputError returns the *InputError in err's chain, if any.
func IsInputError(err error) *InputError {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr
	}
	return nil
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) Has(field string) bool {
	return len(ie.fields[field]) > 0
}

func (ie *InputError) Error() string {
	keys := make([]string, 0, len(ie.fields))
	for k := range ie.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(ie.fields[k], ", "))
	}
	return "invalid booking: " + strings.Join(parts, "; ")
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

// AvailabilityError rejects a stay that touches a blocked date.
type AvailabilityError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func IsAvailabilityError(err error) *AvailabilityError {
	var availErr *AvailabilityError
	if errors.As(err, &availErr) {
		return availErr
	}
	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("selected dates %s to %s are not available, please choose different dates",
		utils.FormatDate(e.CheckIn), utils.FormatDate(e.CheckOut))
}
