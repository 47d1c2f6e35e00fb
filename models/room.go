package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RoomType is the backend's numeric room type code.
type RoomType int

const (
	RoomTypeUnknown RoomType = iota
	StandardWithBalcony
	SuperiorWithBalcony
	PremiumWithBalcony
)

var roomTypeNames = map[RoomType]string{
	StandardWithBalcony: "Standard With Balcony",
	SuperiorWithBalcony: "Superior With Balcony",
	PremiumWithBalcony:  "Premium With Balcony",
}

func (t RoomType) String() string {
	if name, ok := roomTypeNames[t]; ok {
		return name
	}
	return "Unknown Room Type"
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeNames[t]
	return ok
}

// Index is the zero-based value booking forms carry.
func (t RoomType) Index() int {
	return int(t) - 1
}

// RoomTypeFromIndex is the inverse of Index.
func RoomTypeFromIndex(i int) (RoomType, error) {
	t := RoomType(i + 1)
	if !t.Valid() {
		return RoomTypeUnknown, fmt.Errorf("unknown room type index %d", i)
	}
	return t, nil
}

// ParseRoomType accepts the numeric code, the full name or its first word.
func ParseRoomType(s string) (RoomType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if t := RoomType(n); t.Valid() {
			return t, nil
		}
		return RoomTypeUnknown, fmt.Errorf("unknown room type %q", s)
	}
	key := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	for t, name := range roomTypeNames {
		full := strings.ToLower(strings.ReplaceAll(name, " ", ""))
		short := strings.ToLower(strings.Fields(name)[0])
		if key == full || key == short {
			return t, nil
		}
	}
	return RoomTypeUnknown, fmt.Errorf("unknown room type %q", s)
}

// UnmarshalJSON accepts numbers and strings; anything unrecognised decodes to
// RoomTypeUnknown, which never matches a requested type.
func (t *RoomType) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*t = RoomType(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = RoomTypeUnknown
		return nil
	}
	parsed, err := ParseRoomType(s)
	if err != nil {
		*t = RoomTypeUnknown
		return nil
	}
	*t = parsed
	return nil
}

type Room struct {
	ID            int64    `json:"id"`
	RoomNumber    string   `json:"roomNumber"`
	Type          RoomType `json:"type"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	IsAvailable   bool     `json:"isAvailable"`
	Capacity      int      `json:"capacity"`
	HotelID       int64    `json:"hotelId"`
}

// RoomInput is the body of an add-room request.
type RoomInput struct {
	HotelID       int64    `json:"hotelId" binding:"required"`
	RoomNumber    string   `json:"roomNumber" binding:"required"`
	Type          RoomType `json:"type" binding:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	IsAvailable   bool     `json:"isAvailable"`
	Capacity      int      `json:"capacity" binding:"required,gte=1"`
}

// Editable projects the fields an owner may change; its keys match Room's.
func (r Room) Editable() RoomInput {
	return RoomInput{
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		IsAvailable:   r.IsAvailable,
		Capacity:      r.Capacity,
	}
}
