package backend

import (
	"context"
	"fmt"
	"net/http"

	"hotelbook/models"
)

func (c *Client) GetRooms(ctx context.Context, token string, hotelID int64) ([]models.Room, error) {
	var out []models.Room
	err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/rooms/get-rooms/%d", hotelID), token: token}, &out)
	return out, err
}

func (c *Client) AddRoom(ctx context.Context, token string, in models.RoomInput) (*models.Room, error) {
	var out models.Room
	if err := c.do(ctx, request{method: http.MethodPost, path: "/rooms/add-room", token: token, body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchRoom(ctx context.Context, token string, id int64, patch []byte) (*models.Room, error) {
	var out models.Room
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/rooms/update-room/%d", id),
		token:  token,
		body:   rawJSON(patch),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoom(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/rooms/delete-room/%d", id), token: token}, nil)
}
