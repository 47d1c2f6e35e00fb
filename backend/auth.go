package backend

import (
	"context"
	"errors"
	"net/http"

	"hotelbook/models"
)

// AuthResponse is returned by login and both registration endpoints.
type AuthResponse struct {
	ID           *int64 `json:"id,omitempty"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PhoneNumber  string `json:"phoneNumber"`
	Token        string `json:"token"`
	Message      string `json:"message,omitempty"`
	HotelOwnerID *int64 `json:"hotelOwnerId,omitempty"`
	CustomerID   *int64 `json:"customerId,omitempty"`
}

var ErrMissingToken = errors.New("auth response carries no token")

// Validate checks the fields a session cannot be built without.
func (r *AuthResponse) Validate() error {
	if r == nil || r.Token == "" {
		return ErrMissingToken
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/Auth/login",
		body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterCustomer(ctx context.Context, reg models.Registration) (*AuthResponse, error) {
	return c.register(ctx, "/Auth/register-customer", reg)
}

func (c *Client) RegisterHotelOwner(ctx context.Context, reg models.Registration) (*AuthResponse, error) {
	return c.register(ctx, "/Auth/register", reg)
}

func (c *Client) register(ctx context.Context, path string, reg models.Registration) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: reg}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile returns the backend's confirmation message.
func (c *Client) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, request{method: http.MethodPut, path: "/Auth/update-profile", token: token, body: upd}, &out)
	return out.Message, err
}

func (c *Client) GetUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/Auth/users", token: token}, &out)
	return out, err
}
