package library

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// BookQuery narrows ListBooks server-side. The zero value lists everything.
type BookQuery struct {
	Bookshelf int64 // filter to a single bookshelf when > 0
}

// ListBooks retrieves the user's books, optionally filtered by bookshelf.
func (c *Client) ListBooks(ctx context.Context, filter BookQuery) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if filter.Bookshelf > 0 {
		values.Set("bookshelf", strconv.FormatInt(filter.Bookshelf, 10))
	}
	rel := &url.URL{Path: "/api/books/", RawQuery: values.Encode()}

	var books []Book
	status, err := c.doURL(ctx, http.MethodGet, rel, nil, &books)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return books, nil
}

// GetBook retrieves a single book with its lookup metadata attached.
func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var book Book
	status, err := c.do(ctx, http.MethodGet, idPath("books", id), nil, &book)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &book, nil
}

// CreateBook registers a new book and returns the stored entity.
func (c *Client) CreateBook(ctx context.Context, book Book) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var created Book
	status, err := c.do(ctx, http.MethodPost, "/api/books/", book, &created)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &created, nil
}

// UpdateBook replaces the stored book identified by book.ID.
func (c *Client) UpdateBook(ctx context.Context, book Book) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if book.ID <= 0 {
		return nil, fmt.Errorf("book id required")
	}
	var updated Book
	status, err := c.do(ctx, http.MethodPut, idPath("books", book.ID), book, &updated)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &updated, nil
}

// DeleteBook removes a book, returning the backend's status code.
func (c *Client) DeleteBook(ctx context.Context, id int64) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, idPath("books", id), nil, nil)
}

// SearchISBN queries the backend-proxied metadata lookup for an ISBN.
// An unknown ISBN yields (nil, nil).
func (c *Client) SearchISBN(ctx context.Context, isbn string) (*VolumeInfo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("isbn required")
	}
	values := url.Values{}
	values.Set("isbn", isbn)
	rel := &url.URL{Path: "/api/books/search/", RawQuery: values.Encode()}

	var info VolumeInfo
	status, err := c.doURL(ctx, http.MethodGet, rel, nil, &info)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &info, nil
}
