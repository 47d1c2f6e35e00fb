package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotelbook/models"
	"hotelbook/utils"
)

// Resolver builds availability calendars from a hotel's room state.
type Resolver struct {
	rooms        RoomSource
	mode         Mode
	windowMonths int
	concurrency  int
	logger       *zap.Logger
	now          func() time.Time
}

type Option func(*Resolver)

func WithMode(mode Mode) Option {
	return func(r *Resolver) { r.mode = mode }
}

// WithWindow sets how many months past today are scanned.
func WithWindow(months int) Option {
	return func(r *Resolver) {
		if months > 0 {
			r.windowMonths = months
		}
	}
}

// WithConcurrency bounds the number of dates checked at once.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

func NewResolver(rooms RoomSource, logger *zap.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		rooms:        rooms,
		mode:         ModeSnapshot,
		windowMonths: 12,
		concurrency:  16,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the calendar for roomType over [today, today+window].
func (r *Resolver) Resolve(ctx context.Context, token string, hotelID int64, roomType models.RoomType) (*Calendar, error) {
	rooms, err := r.rooms.GetRooms(ctx, token, hotelID)
	if err != nil {
		return nil, fmt.Errorf("fetching rooms for hotel %d: %w", hotelID, err)
	}
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}

	var checker DateChecker = newSnapshotChecker(rooms, roomType)
	if r.mode == ModeRefetch {
		checker = refetchChecker{rooms: r.rooms, token: token, hotelID: hotelID, roomType: roomType}
	}

	days, err := r.scan(ctx, checker, r.window())
	if err != nil {
		return nil, err
	}
	cal := newCalendar(hotelID, roomType, days)

	r.logger.Debug("availability resolved",
		zap.Int64("hotelId", hotelID),
		zap.String("roomType", roomType.String()),
		zap.String("mode", string(r.mode)),
		zap.Int("unavailable", len(cal.unavailable)))
	return cal, nil
}

// window lists every date from today to today+windowMonths, inclusive.
func (r *Resolver) window() []time.Time {
	start := utils.StartOfDay(r.now())
	end := start.AddDate(0, r.windowMonths, 0)
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// scan checks each date on a bounded pool. Results are written by index and
// only read after every check has joined.
func (r *Resolver) scan(ctx context.Context, checker DateChecker, dates []time.Time) ([]models.DateAvailability, error) {
	days := make([]models.DateAvailability, len(dates))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, date := range dates {
		wg.Add(1)
		go func(i int, date time.Time) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			ok, err := checker.Available(ctx, date)
			if err != nil {
				r.logger.Warn("date check failed, marking unavailable",
					zap.String("date", utils.FormatDate(date)),
					zap.Error(err))
				ok = false
			}
			days[i] = models.DateAvailability{Date: date, Available: ok}
		}(i, date)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
