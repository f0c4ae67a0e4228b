package library

import (
	"context"
	"fmt"
	"net/http"
)

// ListCategories retrieves all of the user's categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var categories []Category
	status, err := c.do(ctx, http.MethodGet, "/api/categories/", nil, &categories)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return categories, nil
}

// GetCategory retrieves a single category.
func (c *Client) GetCategory(ctx context.Context, id int64) (*Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var category Category
	status, err := c.do(ctx, http.MethodGet, idPath("categories", id), nil, &category)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &category, nil
}

// CreateCategory registers a new category.
func (c *Client) CreateCategory(ctx context.Context, category Category) (*Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var created Category
	status, err := c.do(ctx, http.MethodPost, "/api/categories/", category, &created)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &created, nil
}

// UpdateCategory replaces the stored category identified by category.ID.
func (c *Client) UpdateCategory(ctx context.Context, category Category) (*Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if category.ID <= 0 {
		return nil, fmt.Errorf("category id required")
	}
	var updated Category
	status, err := c.do(ctx, http.MethodPut, idPath("categories", category.ID), category, &updated)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &updated, nil
}

// DeleteCategory removes a category. Books referencing it keep existing with
// the reference nulled server-side.
func (c *Client) DeleteCategory(ctx context.Context, id int64) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, idPath("categories", id), nil, nil)
}
