package availability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/models"
	"hotelbook/utils"
)

type fakeRooms struct {
	rooms []models.Room
	err   error
	calls int32
}

func (f *fakeRooms) GetRooms(context.Context, string, int64) ([]models.Room, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.rooms, f.err
}

var today = time.Date(2025, 5, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestResolveAvailableAllYear(t *testing.T) {
	src := &fakeRooms{rooms: []models.Room{
		{ID: 1, Type: models.StandardWithBalcony, IsAvailable: true},
		{ID: 2, Type: models.PremiumWithBalcony, IsAvailable: false},
	}}
	r := NewResolver(src, nil, WithClock(fixedClock))

	cal, err := r.Resolve(context.Background(), "tok", 1, models.StandardWithBalcony)
	require.NoError(t, err)

	assert.Empty(t, cal.UnavailableDates())
	assert.True(t, cal.IsRangeAvailable(date(t, "2025-06-01"), date(t, "2025-06-05")))
	assert.Equal(t, date(t, "2025-05-15"), cal.From)
	assert.Equal(t, date(t, "2026-05-15"), cal.To)
	assert.Len(t, cal.Days(), 366)
	assert.EqualValues(t, 1, src.calls)
}

func TestResolveNoMatchingRoomBlocksEveryDate(t *testing.T) {
	tests := []struct {
		name  string
		rooms []models.Room
		want  models.RoomType
	}{
		{"flagged unavailable", []models.Room{{Type: models.StandardWithBalcony, IsAvailable: false}}, models.StandardWithBalcony},
		{"only other types", []models.Room{{Type: models.SuperiorWithBalcony, IsAvailable: true}}, models.StandardWithBalcony},
		{"unknown requested type", []models.Room{{Type: models.StandardWithBalcony, IsAvailable: true}}, models.RoomTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(&fakeRooms{rooms: tt.rooms}, nil, WithClock(fixedClock))

			cal, err := r.Resolve(context.Background(), "tok", 1, tt.want)
			require.NoError(t, err)

			days := cal.Days()
			assert.Len(t, cal.UnavailableDates(), len(days))
			for _, d := range days {
				assert.False(t, d.Available)
			}
			assert.False(t, cal.IsRangeAvailable(date(t, "2025-06-01"), date(t, "2025-06-05")))
		})
	}
}

func TestResolveEmptyRoomList(t *testing.T) {
	r := NewResolver(&fakeRooms{}, nil, WithClock(fixedClock))
	_, err := r.Resolve(context.Background(), "tok", 1, models.StandardWithBalcony)
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestResolveFetchError(t *testing.T) {
	boom := errors.New("boom")
	r := NewResolver(&fakeRooms{err: boom}, nil, WithClock(fixedClock))
	_, err := r.Resolve(context.Background(), "tok", 1, models.StandardWithBalcony)
	assert.ErrorIs(t, err, boom)
}

func TestResolveRefetchQueriesPerDate(t *testing.T) {
	src := &fakeRooms{rooms: []models.Room{{Type: models.SuperiorWithBalcony, IsAvailable: true}}}
	r := NewResolver(src, nil, WithClock(fixedClock), WithMode(ModeRefetch), WithWindow(1))

	cal, err := r.Resolve(context.Background(), "tok", 1, models.SuperiorWithBalcony)
	require.NoError(t, err)

	days := len(cal.Days())
	assert.Equal(t, 32, days)
	assert.EqualValues(t, 1+days, src.calls)
	assert.Empty(t, cal.UnavailableDates())
}

type checkerFunc func(ctx context.Context, d time.Time) (bool, error)

func (f checkerFunc) Available(ctx context.Context, d time.Time) (bool, error) { return f(ctx, d) }

func TestScanMarksFailedChecksUnavailable(t *testing.T) {
	r := NewResolver(nil, nil, WithClock(fixedClock), WithWindow(1))
	bad := date(t, "2025-05-20")

	days, err := r.scan(context.Background(), checkerFunc(func(_ context.Context, d time.Time) (bool, error) {
		if d.Equal(bad) {
			return true, errors.New("timeout")
		}
		return true, nil
	}), r.window())
	require.NoError(t, err)

	cal := newCalendar(1, models.StandardWithBalcony, days)
	assert.Equal(t, []time.Time{bad}, cal.UnavailableDates())
}

func TestScanIsBounded(t *testing.T) {
	r := NewResolver(nil, nil, WithClock(fixedClock), WithConcurrency(3))

	var mu sync.Mutex
	var inFlight, peak int
	_, err := r.scan(context.Background(), checkerFunc(func(context.Context, time.Time) (bool, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()
		time.Sleep(time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
		return true, nil
	}), r.window())
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, 3)
	assert.Positive(t, peak)
}

func TestScanCancelled(t *testing.T) {
	r := NewResolver(nil, nil, WithClock(fixedClock), WithWindow(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.scan(ctx, checkerFunc(func(ctx context.Context, _ time.Time) (bool, error) {
		return false, ctx.Err()
	}), r.window())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSnapshot, m)

	m, err = ParseMode("Refetch")
	require.NoError(t, err)
	assert.Equal(t, ModeRefetch, m)

	_, err = ParseMode("lazy")
	assert.Error(t, err)
}
