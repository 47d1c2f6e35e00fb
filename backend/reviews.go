package backend

import (
	"context"
	"fmt"
	"net/http"

	"hotelbook/models"
)

func (c *Client) GetReviews(ctx context.Context, token string, hotelID int64) ([]models.Review, error) {
	var out []models.Review
	err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/reviews/%d", hotelID), token: token}, &out)
	return out, err
}

func (c *Client) AddReview(ctx context.Context, token string, req models.ReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, request{method: http.MethodPost, path: "/reviews", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReview(ctx context.Context, token string, id int64, req models.ReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/reviews/%d", id), token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/reviews/%d", id), token: token}, nil)
}
