package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hotelbook/models"
)

func (c *Client) GetHotels(ctx context.Context, token string) ([]models.Hotel, error) {
	var out []models.Hotel
	err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/all", token: token}, &out)
	return out, err
}

func (c *Client) GetHotelsByOwner(ctx context.Context, token string) ([]models.Hotel, error) {
	var out []models.Hotel
	err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/by-owner", token: token}, &out)
	return out, err
}

// SearchHotels forwards only the parameters that are set.
func (c *Client) SearchHotels(ctx context.Context, token string, q models.HotelSearch) ([]models.Hotel, error) {
	params := url.Values{}
	setIf := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	setIf("searchTerm", q.SearchTerm)
	setIf("checkInDate", q.CheckInDate)
	setIf("checkOutDate", q.CheckOutDate)
	if q.NumberOfGuests > 0 {
		params.Set("numberOfGuests", strconv.Itoa(q.NumberOfGuests))
	}
	if q.NumberOfRooms > 0 {
		params.Set("numberOfRooms", strconv.Itoa(q.NumberOfRooms))
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}

	var out []models.Hotel
	err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/search", token: token, query: params}, &out)
	return out, err
}

func (c *Client) GetCities(ctx context.Context, prefix string) ([]string, error) {
	var params url.Values
	if prefix != "" {
		params = url.Values{"q": {prefix}}
	}
	var out []string
	err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/cities", query: params}, &out)
	return out, err
}

func (c *Client) GetHotel(ctx context.Context, token string, id int64) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/hotels/%d", id), token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddHotel(ctx context.Context, token string, in models.HotelInput) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.do(ctx, request{method: http.MethodPost, path: "/hotels/add", token: token, body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchHotel sends an RFC 6902 document as produced by jsondiff.
func (c *Client) PatchHotel(ctx context.Context, token string, id int64, patch []byte) error {
	return c.do(ctx, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/hotels/%d", id),
		token:  token,
		body:   rawJSON(patch),
	}, nil)
}

func (c *Client) DeleteHotel(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/hotels/%d", id), token: token}, nil)
}

// rawJSON is a pre-encoded body; json.Marshal passes it through untouched.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("[]"), nil
	}
	return r, nil
}
