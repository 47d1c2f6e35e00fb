package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/", 5*time.Second, nil)
}

func TestLoginSendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/Auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok", "role": "Customer", "fullName": "Ann",
		})
	})

	resp, err := c.Login(context.Background(), "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "Customer", resp.Role)
	assert.NoError(t, resp.Validate())
}

func TestAuthResponseValidate(t *testing.T) {
	assert.ErrorIs(t, (&AuthResponse{Role: "Customer"}).Validate(), ErrMissingToken)
	var nilResp *AuthResponse
	assert.ErrorIs(t, nilResp.Validate(), ErrMissingToken)
}

func TestBearerTokenIsForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/rooms/get-rooms/7", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"type":1,"isAvailable":true},{"id":2,"type":"Premium","isAvailable":false}]`)
	})

	rooms, err := c.GetRooms(context.Background(), "tok", 7)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, models.StandardWithBalcony, rooms[0].Type)
	assert.Equal(t, models.PremiumWithBalcony, rooms[1].Type)
}

func TestErrorMessageSurfacedVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Room not available for selected dates."}`, "Room not available for selected dates."},
		{"problem title", http.StatusBadRequest, `{"title":"One or more validation errors occurred."}`, "One or more validation errors occurred."},
		{"plain text", http.StatusConflict, `Already booked`, "Already booked"},
		{"empty body", http.StatusForbidden, ``, "Forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.AddBooking(context.Background(), "tok", models.BookingRequest{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestUnreachableBackendIsBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.GetHotels(context.Background(), "")
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestSearchHotelsOnlySendsSetParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Lisbon", q.Get("searchTerm"))
		assert.Equal(t, "2", q.Get("numberOfGuests"))
		assert.Equal(t, "150.5", q.Get("maxPrice"))
		assert.False(t, q.Has("numberOfRooms"))
		assert.False(t, q.Has("checkInDate"))
		_, _ = io.WriteString(w, `[]`)
	})

	maxPrice := 150.5
	_, err := c.SearchHotels(context.Background(), "", models.HotelSearch{
		SearchTerm:     "Lisbon",
		NumberOfGuests: 2,
		MaxPrice:       &maxPrice,
	})
	require.NoError(t, err)
}

func TestPatchHotelSendsDocumentAsIs(t *testing.T) {
	doc := `[{"op":"replace","path":"/name","value":"Sea View"}]`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/hotels/3", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, doc, string(raw))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.PatchHotel(context.Background(), "tok", 3, []byte(doc)))
}

func TestCancelBookingNoBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/booking/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.CancelBooking(context.Background(), "tok", 42))
}

func TestGetUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Auth/users", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.User{{ID: 1, FullName: "Ada", Role: "Admin"}})
	})

	users, err := c.GetUsers(context.Background(), "admin-token")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Admin", users[0].Role)
}

func TestGetOwnerBookingsSendsHotelIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/booking/by-owner", r.URL.Path)
		assert.Equal(t, []string{"3", "5"}, r.URL.Query()["hotelIds"])
		_, _ = io.WriteString(w, `[{"id":1,"hotelId":3,"status":"Pending"}]`)
	})

	bookings, err := c.GetOwnerBookings(context.Background(), "tok", []int64{3, 5})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingPending, bookings[0].Status)
}
