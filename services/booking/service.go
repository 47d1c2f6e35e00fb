package booking

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotelbook/backend"
	"hotelbook/models"
	"hotelbook/utils"
)

// DefaultBookingService implements BookingService against the REST backend.
type DefaultBookingService struct {
	Backend    Backend
	Calendars  Calendars
	DraftStore DraftStore
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func requireCustomer(sess *models.Session) error {
	if !sess.LoggedIn() {
		return ErrLoginRequired
	}
	if sess.Role != models.RoleCustomer {
		return ErrCustomerRequired
	}
	return nil
}

// Submit validates the form, checks every night against the resolved
// calendar and only then creates the booking. Backend rejections are
// returned as is.
func (s *DefaultBookingService) Submit(ctx context.Context, sess *models.Session, form models.BookingForm) (*models.Booking, error) {
	if err := requireCustomer(sess); err != nil {
		return nil, err
	}
	stay, err := Validate(form)
	if err != nil {
		return nil, err
	}

	cal, err := s.Calendars.Resolve(ctx, sess.Token, stay.Form.HotelID, stay.RoomType)
	if err != nil {
		return nil, fmt.Errorf("resolving availability: %w", err)
	}
	if !cal.IsRangeAvailable(stay.CheckIn, stay.CheckOut) {
		return nil, &AvailabilityError{CheckIn: stay.CheckIn, CheckOut: stay.CheckOut}
	}

	if sess.CustomerID == "" {
		return nil, ErrCustomerIDMissing
	}

	booking, err := s.Backend.AddBooking(ctx, sess.Token, stay.request())
	if err != nil {
		s.logger().Info("booking rejected by backend",
			zap.Int64("hotelId", stay.Form.HotelID),
			zap.String("customerId", sess.CustomerID),
			zap.Error(err))
		return nil, err
	}
	s.logger().Info("booking created",
		zap.Int64("bookingId", booking.ID),
		zap.Int64("hotelId", stay.Form.HotelID),
		zap.Int("nights", stay.Nights()))
	return booking, nil
}

// customerBooking finds id among the customer's own bookings.
func (s *DefaultBookingService) customerBooking(ctx context.Context, sess *models.Session, id int64) (*models.Booking, error) {
	bookings, err := s.Backend.GetCustomerBookings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
}

// pendingBooking loads a booking and checks it can move to next.
func (s *DefaultBookingService) pendingBooking(ctx context.Context, sess *models.Session, id int64, next models.BookingStatus) (*models.Booking, error) {
	if err := requireCustomer(sess); err != nil {
		return nil, err
	}
	b, err := s.customerBooking(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if _, err := b.Status.Transition(next); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) Update(ctx context.Context, sess *models.Session, id int64, upd models.BookingUpdate) error {
	if err := requireCustomer(sess); err != nil {
		return err
	}
	upd, err := ValidateUpdate(upd)
	if err != nil {
		return err
	}
	b, err := s.customerBooking(ctx, sess, id)
	if err != nil {
		return err
	}
	if b.Status != models.BookingPending {
		return fmt.Errorf("%w: booking %d is %s", models.ErrInvalidTransition, id, b.Status)
	}
	return s.Backend.UpdateBooking(ctx, sess.Token, id, upd)
}

func (s *DefaultBookingService) Pay(ctx context.Context, sess *models.Session, id int64, method string) (*models.Payment, error) {
	method, ok := paymentMethod(method)
	if !ok {
		return nil, ErrUnknownPaymentType
	}
	if _, err := s.pendingBooking(ctx, sess, id, models.BookingPaid); err != nil {
		return nil, err
	}
	payment, err := s.Backend.ProcessPayment(ctx, sess.Token, models.PaymentRequest{BookingID: id, PaymentMethod: method})
	if err != nil {
		return nil, err
	}
	s.logger().Info("booking paid", zap.Int64("bookingId", id), zap.String("method", method))
	return payment, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, sess *models.Session, id int64) error {
	if _, err := s.pendingBooking(ctx, sess, id, models.BookingCancelled); err != nil {
		return err
	}
	if err := s.Backend.CancelBooking(ctx, sess.Token, id); err != nil {
		return err
	}
	s.logger().Info("booking cancelled", zap.Int64("bookingId", id))
	return nil
}

func (s *DefaultBookingService) MyBookings(ctx context.Context, sess *models.Session) ([]models.Booking, error) {
	if err := requireCustomer(sess); err != nil {
		return nil, err
	}
	return s.Backend.GetCustomerBookings(ctx, sess.Token)
}

// ownerBookings asks for the bookings of the owner's hotels by id. Backends
// without /booking/by-owner are asked through /hotels/bookings instead.
func (s *DefaultBookingService) ownerBookings(ctx context.Context, token string) ([]models.Booking, error) {
	hotels, err := s.Backend.GetHotelsByOwner(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.ID)
	}

	bookings, err := s.Backend.GetOwnerBookings(ctx, token, ids)
	switch backend.StatusOf(err) {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		s.logger().Debug("owner bookings by hotel id unsupported, using hotel bookings", zap.Error(err))
		return s.Backend.GetHotelBookings(ctx, token)
	}
	return bookings, err
}

// OwnerBookings joins the owner's bookings with the paid payment records.
func (s *DefaultBookingService) OwnerBookings(ctx context.Context, sess *models.Session, paidOnly bool) ([]models.OwnerBooking, error) {
	bookings, err := s.ownerBookings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []models.OwnerBooking{}, nil
	}
	payments, err := s.Backend.GetPaidBookings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	paid := make(map[int64]models.Payment, len(payments))
	for _, p := range payments {
		paid[p.BookingID] = p
	}

	out := make([]models.OwnerBooking, 0, len(bookings))
	for _, b := range bookings {
		ob := models.OwnerBooking{Booking: b, PaymentStatus: models.PaymentStatusUnpaid}
		if p, ok := paid[b.ID]; ok {
			p := p
			ob.PaymentStatus = models.PaymentStatusPaid
			ob.Payment = &p
		}
		if paidOnly && ob.Payment == nil {
			continue
		}
		out = append(out, ob)
	}
	return out, nil
}

func (s *DefaultBookingService) SaveDraft(ctx context.Context, scope string, form models.BookingForm) (*models.BookingDraft, error) {
	inputErr := newInputError()
	if form.HotelID <= 0 {
		inputErr.addError("hotelId", "hotel is required")
	}
	in, out := parseDates(inputErr, form.CheckInDate, form.CheckOutDate)
	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}
	form.CheckInDate = utils.FormatDate(in)
	form.CheckOutDate = utils.FormatDate(out)

	draft := models.BookingDraft{BookingForm: form, SavedAt: s.now().UTC()}
	if err := s.DraftStore.Append(ctx, scope, draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *DefaultBookingService) Drafts(ctx context.Context, scope string) ([]models.BookingDraft, error) {
	return s.DraftStore.List(ctx, scope)
}

func (s *DefaultBookingService) ClearDrafts(ctx context.Context, scope string) error {
	return s.DraftStore.Clear(ctx, scope)
}

func paymentMethod(method string) (string, bool) {
	for _, m := range models.PaymentMethods {
		if strings.EqualFold(m, strings.TrimSpace(method)) {
			return m, true
		}
	}
	return "", false
}
