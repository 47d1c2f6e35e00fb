package availability

import (
	"sort"
	"time"

	"hotelbook/models"
	"hotelbook/utils"
)

// Calendar is the resolved availability of one room type over a window.
type Calendar struct {
	HotelID     int64
	RoomType    models.RoomType
	From        time.Time
	To          time.Time
	days        []models.DateAvailability
	unavailable map[time.Time]struct{}
}

func newCalendar(hotelID int64, roomType models.RoomType, days []models.DateAvailability) *Calendar {
	c := &Calendar{
		HotelID:     hotelID,
		RoomType:    roomType,
		days:        days,
		unavailable: make(map[time.Time]struct{}),
	}
	if len(days) > 0 {
		c.From = days[0].Date
		c.To = days[len(days)-1].Date
	}
	for _, d := range days {
		if !d.Available {
			c.unavailable[d.Date] = struct{}{}
		}
	}
	return c
}

// IsAvailable reports whether date is not blocked. Dates outside the window
// are never blocked.
func (c *Calendar) IsAvailable(date time.Time) bool {
	_, blocked := c.unavailable[utils.StartOfDay(date)]
	return !blocked
}

// IsRangeAvailable walks every day from checkIn through checkOut, inclusive,
// and stops at the first blocked one.
func (c *Calendar) IsRangeAvailable(checkIn, checkOut time.Time) bool {
	end := utils.StartOfDay(checkOut)
	for d := utils.StartOfDay(checkIn); !d.After(end); d = d.AddDate(0, 0, 1) {
		if !c.IsAvailable(d) {
			return false
		}
	}
	return true
}

func (c *Calendar) UnavailableDates() []time.Time {
	dates := make([]time.Time, 0, len(c.unavailable))
	for d := range c.unavailable {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Days returns the per-date availability in date order.
func (c *Calendar) Days() []models.DateAvailability {
	out := make([]models.DateAvailability, len(c.days))
	copy(out, c.days)
	return out
}

// CalendarView is the JSON shape served to clients.
type CalendarView struct {
	HotelID          int64    `json:"hotelId"`
	RoomType         string   `json:"roomType"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	UnavailableDates []string `json:"unavailableDates"`
}

func (c *Calendar) View() CalendarView {
	v := CalendarView{
		HotelID:          c.HotelID,
		RoomType:         c.RoomType.String(),
		From:             utils.FormatDate(c.From),
		To:               utils.FormatDate(c.To),
		UnavailableDates: []string{},
	}
	for _, d := range c.UnavailableDates() {
		v.UnavailableDates = append(v.UnavailableDates, utils.FormatDate(d))
	}
	return v
}
