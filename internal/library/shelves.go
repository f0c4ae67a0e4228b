package library

import (
	"context"
	"fmt"
	"net/http"
)

// ListBookshelves retrieves all of the user's bookshelves.
func (c *Client) ListBookshelves(ctx context.Context) ([]Bookshelf, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var shelves []Bookshelf
	status, err := c.do(ctx, http.MethodGet, "/api/bookshelves/", nil, &shelves)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return shelves, nil
}

// GetBookshelf retrieves a single bookshelf.
func (c *Client) GetBookshelf(ctx context.Context, id int64) (*Bookshelf, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var shelf Bookshelf
	status, err := c.do(ctx, http.MethodGet, idPath("bookshelves", id), nil, &shelf)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &shelf, nil
}

// CreateBookshelf registers a new bookshelf.
func (c *Client) CreateBookshelf(ctx context.Context, shelf Bookshelf) (*Bookshelf, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var created Bookshelf
	status, err := c.do(ctx, http.MethodPost, "/api/bookshelves/", shelf, &created)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &created, nil
}

// UpdateBookshelf replaces the stored bookshelf identified by shelf.ID.
func (c *Client) UpdateBookshelf(ctx context.Context, shelf Bookshelf) (*Bookshelf, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if shelf.ID <= 0 {
		return nil, fmt.Errorf("bookshelf id required")
	}
	var updated Bookshelf
	status, err := c.do(ctx, http.MethodPut, idPath("bookshelves", shelf.ID), shelf, &updated)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &updated, nil
}

// DeleteBookshelf removes a bookshelf. The backend cascades the delete to
// the books it contains.
func (c *Client) DeleteBookshelf(ctx context.Context, id int64) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, idPath("bookshelves", id), nil, nil)
}
