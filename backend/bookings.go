package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hotelbook/models"
)

func (c *Client) AddBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, request{method: http.MethodPost, path: "/booking/add", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCustomerBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, request{method: http.MethodGet, path: "/booking/customer", token: token}, &out)
	return out, err
}

// GetOwnerBookings lists the bookings of the given hotels, one hotelIds
// parameter per hotel.
func (c *Client) GetOwnerBookings(ctx context.Context, token string, hotelIDs []int64) ([]models.Booking, error) {
	params := url.Values{}
	for _, id := range hotelIDs {
		params.Add("hotelIds", strconv.FormatInt(id, 10))
	}
	var out []models.Booking
	err := c.do(ctx, request{method: http.MethodGet, path: "/booking/by-owner", token: token, query: params}, &out)
	return out, err
}

// GetHotelBookings lists every booking of the caller's hotels, resolved by
// the backend from the token.
func (c *Client) GetHotelBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/bookings", token: token}, &out)
	return out, err
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, upd models.BookingUpdate) error {
	return c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/booking/%d", id), token: token, body: upd}, nil)
}

func (c *Client) CancelBooking(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/booking/%d", id), token: token}, nil)
}
