package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func sampleBooks() []Book {
	return []Book{
		{ID: 1, Title: "Dune", Author: "Herbert", Bookshelf: 1, Category: ptr(10), Series: ptr(20)},
		{ID: 2, Title: "Foundation", Author: "Asimov", Bookshelf: 2},
		{ID: 3, Title: "Dune Messiah", Author: "Herbert", Bookshelf: 1, Series: ptr(20)},
	}
}

func TestFilterBooks_TitleSubstringCaseInsensitive(t *testing.T) {
	got := FilterBooks([]Book{
		{Title: "Dune", Author: "Herbert"},
		{Title: "Foundation", Author: "Asimov"},
	}, BookFilter{Title: "dun"})

	assert.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}

func TestFilterBooks_AuthorMatchesLookupMetadata(t *testing.T) {
	books := []Book{
		{ID: 1, GoogleData: &VolumeInfo{Authors: []string{"Frank Herbert"}}},
		{ID: 2, Author: "Asimov"},
	}

	got := FilterBooks(books, BookFilter{Author: "herbert"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterBooks_ReferenceEquality(t *testing.T) {
	books := sampleBooks()

	assert.Len(t, FilterBooks(books, BookFilter{Bookshelf: 1}), 2)
	assert.Len(t, FilterBooks(books, BookFilter{Category: 10}), 1)
	assert.Len(t, FilterBooks(books, BookFilter{Series: 20}), 2)
	// Books without the reference never match an id criterion.
	assert.Empty(t, FilterBooks(books, BookFilter{Category: 99}))
}

func TestFilterBooks_CriteriaComposeANDWise(t *testing.T) {
	books := sampleBooks()

	got := FilterBooks(books, BookFilter{Title: "dune", Series: 20, Author: "herb"})
	assert.Len(t, got, 2)

	got = FilterBooks(books, BookFilter{Title: "dune", Bookshelf: 2})
	assert.Empty(t, got)
}

func TestFilterBooks_ZeroFilterPassesEverything(t *testing.T) {
	books := sampleBooks()
	assert.Equal(t, books, FilterBooks(books, BookFilter{}))
	assert.True(t, BookFilter{Title: "  "}.IsZero())
}

func TestBookDisplayHelpers(t *testing.T) {
	b := Book{ISBN: "9780441013593"}
	assert.Equal(t, "9780441013593", b.DisplayTitle())
	assert.Empty(t, b.PrimaryAuthor())

	b.GoogleData = &VolumeInfo{Title: "Dune", Authors: []string{"Frank Herbert"}}
	assert.Equal(t, "Dune", b.DisplayTitle())
	assert.Equal(t, "Frank Herbert", b.PrimaryAuthor())

	b.Title = "Dune (first edition)"
	b.Author = "Herbert, Frank"
	assert.Equal(t, "Dune (first edition)", b.DisplayTitle())
	assert.Equal(t, "Herbert, Frank", b.PrimaryAuthor())
}
