package usersdk

import (
	"context"
	"net/http"
	"strconv"
)

// ListUsers returns every user. Requires an admin session.
func (c *Client) ListUsers(ctx context.Context) ([]UserSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.apiURL("/admin/users"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []UserSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a user. Requires an admin session.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/admin/users"), req)
	if err != nil {
		return nil, err
	}

	var out CreateUserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a partial update. Requires an admin session.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPut, c.apiURL("/admin/users/"+strconv.FormatInt(id, 10)), req)
	if err != nil {
		return err
	}
	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// DeleteUser removes a user. Requires an admin session.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, c.apiURL("/admin/users/"+strconv.FormatInt(id, 10)), nil, nil)
	if err != nil {
		return err
	}
	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
