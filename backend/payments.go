package backend

import (
	"context"
	"net/http"

	"hotelbook/models"
)

func (c *Client) ProcessPayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, request{method: http.MethodPost, path: "/payments/process-payment", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPaidBookings(ctx context.Context, token string) ([]models.Payment, error) {
	var out []models.Payment
	err := c.do(ctx, request{method: http.MethodGet, path: "/payments/paid-bookings", token: token}, &out)
	return out, err
}
