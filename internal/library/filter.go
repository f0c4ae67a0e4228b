package library

import "strings"

// BookFilter is the client-side search form applied over an already-fetched
// book collection. Text fields match case-insensitive substrings; reference
// fields match by id. Zero-valued fields pass everything, and criteria
// compose AND-wise.
type BookFilter struct {
	Title     string
	Author    string
	Bookshelf int64
	Category  int64
	Series    int64
}

// IsZero reports whether the filter would pass every book.
func (f BookFilter) IsZero() bool {
	return strings.TrimSpace(f.Title) == "" &&
		strings.TrimSpace(f.Author) == "" &&
		f.Bookshelf == 0 && f.Category == 0 && f.Series == 0
}

// Matches reports whether a book satisfies every set criterion.
func (f BookFilter) Matches(b Book) bool {
	if title := strings.TrimSpace(f.Title); title != "" {
		if !containsFold(b.DisplayTitle(), title) {
			return false
		}
	}
	if author := strings.TrimSpace(f.Author); author != "" {
		if !matchesAuthor(b, author) {
			return false
		}
	}
	if f.Bookshelf > 0 && b.Bookshelf != f.Bookshelf {
		return false
	}
	if f.Category > 0 && (b.Category == nil || *b.Category != f.Category) {
		return false
	}
	if f.Series > 0 && (b.Series == nil || *b.Series != f.Series) {
		return false
	}
	return true
}

// FilterBooks returns the books satisfying the filter, preserving order.
func FilterBooks(books []Book, f BookFilter) []Book {
	if f.IsZero() {
		return books
	}
	matched := make([]Book, 0, len(books))
	for _, b := range books {
		if f.Matches(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

func matchesAuthor(b Book, author string) bool {
	if containsFold(b.Author, author) {
		return true
	}
	if b.GoogleData != nil {
		for _, a := range b.GoogleData.Authors {
			if containsFold(a, author) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
