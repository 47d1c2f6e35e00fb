package models

type HotelImage struct {
	ID        int64  `json:"id,omitempty"`
	ImageURL  string `json:"imageUrl"`
	HotelID   int64  `json:"hotelId,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

type Amenity struct {
	Name string `json:"name"`
}

type Hotel struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Country      string       `json:"country"`
	StarRating   float64      `json:"starRating,omitempty"`
	Description  string       `json:"description,omitempty"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty"`
	IsActive     bool         `json:"isActive"`
	HotelOwnerID int64        `json:"hotelOwnerId"`
	Images       []HotelImage `json:"images,omitempty"`
	Amenities    []Amenity    `json:"amenities,omitempty"`
	Rooms        []Room       `json:"rooms,omitempty"`
	Reviews      []Review     `json:"reviews,omitempty"`
}

// PrimaryImage returns the primary image URL, or the first image when none is flagged.
func (h Hotel) PrimaryImage() string {
	for _, img := range h.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(h.Images) > 0 {
		return h.Images[0].ImageURL
	}
	return ""
}

// MinPricePerNight is the cheapest room rate; ok is false for hotels without rooms.
func (h Hotel) MinPricePerNight() (price float64, ok bool) {
	for i, r := range h.Rooms {
		if i == 0 || r.PricePerNight < price {
			price = r.PricePerNight
		}
		ok = true
	}
	return price, ok
}

// HotelCard is the listing projection used by browse and search views.
type HotelCard struct {
	Hotel
	Location     string   `json:"location"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	PriceFrom    *float64 `json:"priceFrom,omitempty"`
	AvgRating    float64  `json:"avgRating"`
	ReviewsCount int      `json:"reviewsCount"`
}

func NewHotelCard(h Hotel) HotelCard {
	card := HotelCard{
		Hotel:        h,
		Location:     h.City + ", " + h.Country,
		ImageURL:     h.PrimaryImage(),
		AvgRating:    AverageRating(h.Reviews),
		ReviewsCount: len(h.Reviews),
	}
	if price, ok := h.MinPricePerNight(); ok {
		card.PriceFrom = &price
	}
	return card
}

// HotelSearch mirrors the backend's search query parameters.
type HotelSearch struct {
	SearchTerm     string   `form:"searchTerm"`
	CheckInDate    string   `form:"checkInDate"`
	CheckOutDate   string   `form:"checkOutDate"`
	NumberOfGuests int      `form:"numberOfGuests"`
	NumberOfRooms  int      `form:"numberOfRooms"`
	MaxPrice       *float64 `form:"maxPrice"`
}

// HotelInput is the body of an add-hotel request.
type HotelInput struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	StarRating   float64 `json:"starRating"`
	Description  string  `json:"description"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
}

// Editable projects the fields an owner may change; its keys match Hotel's.
func (h Hotel) Editable() HotelInput {
	return HotelInput{
		Name:         h.Name,
		Address:      h.Address,
		City:         h.City,
		Country:      h.Country,
		StarRating:   h.StarRating,
		Description:  h.Description,
		ContactEmail: h.ContactEmail,
		ContactPhone: h.ContactPhone,
	}
}
