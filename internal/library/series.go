package library

import (
	"context"
	"fmt"
	"net/http"
)

// ListSeries retrieves all of the user's series.
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var series []Series
	status, err := c.do(ctx, http.MethodGet, "/api/series/", nil, &series)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return series, nil
}

// GetSeries retrieves a single series.
func (c *Client) GetSeries(ctx context.Context, id int64) (*Series, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var series Series
	status, err := c.do(ctx, http.MethodGet, idPath("series", id), nil, &series)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &series, nil
}

// CreateSeries registers a new series.
func (c *Client) CreateSeries(ctx context.Context, series Series) (*Series, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var created Series
	status, err := c.do(ctx, http.MethodPost, "/api/series/", series, &created)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &created, nil
}

// UpdateSeries replaces the stored series identified by series.ID.
func (c *Client) UpdateSeries(ctx context.Context, series Series) (*Series, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if series.ID <= 0 {
		return nil, fmt.Errorf("series id required")
	}
	var updated Series
	status, err := c.do(ctx, http.MethodPut, idPath("series", series.ID), series, &updated)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &updated, nil
}

// DeleteSeries removes a series. Books referencing it keep existing with the
// reference and volume number nulled server-side.
func (c *Client) DeleteSeries(ctx context.Context, id int64) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, idPath("series", id), nil, nil)
}
