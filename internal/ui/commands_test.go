package ui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwhalen/alcove/internal/library"
)

// fakeCatalogue is a scripted stand-in for the API client.
type fakeCatalogue struct {
	books      []library.Book
	shelves    []library.Bookshelf
	categories []library.Category
	series     []library.Series

	booksErr      error
	shelvesErr    error
	categoriesErr error
	seriesErr     error

	shelf    *library.Bookshelf
	shelfErr error

	deleteStatus int
	deleteErr    error

	lastBookQuery library.BookQuery
}

func (f *fakeCatalogue) ListBooks(_ context.Context, q library.BookQuery) ([]library.Book, error) {
	f.lastBookQuery = q
	return f.books, f.booksErr
}

func (f *fakeCatalogue) GetBook(context.Context, int64) (*library.Book, error) { return nil, nil }

func (f *fakeCatalogue) CreateBook(_ context.Context, b library.Book) (*library.Book, error) {
	return &b, nil
}

func (f *fakeCatalogue) UpdateBook(_ context.Context, b library.Book) (*library.Book, error) {
	return &b, nil
}

func (f *fakeCatalogue) DeleteBook(context.Context, int64) (int, error) {
	return f.deleteStatus, f.deleteErr
}

func (f *fakeCatalogue) SearchISBN(context.Context, string) (*library.VolumeInfo, error) {
	return nil, nil
}

func (f *fakeCatalogue) ListBookshelves(context.Context) ([]library.Bookshelf, error) {
	return f.shelves, f.shelvesErr
}

func (f *fakeCatalogue) GetBookshelf(context.Context, int64) (*library.Bookshelf, error) {
	return f.shelf, f.shelfErr
}

func (f *fakeCatalogue) CreateBookshelf(_ context.Context, s library.Bookshelf) (*library.Bookshelf, error) {
	return &s, nil
}

func (f *fakeCatalogue) UpdateBookshelf(_ context.Context, s library.Bookshelf) (*library.Bookshelf, error) {
	return &s, nil
}

func (f *fakeCatalogue) DeleteBookshelf(context.Context, int64) (int, error) {
	return f.deleteStatus, f.deleteErr
}

func (f *fakeCatalogue) ListCategories(context.Context) ([]library.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeCatalogue) GetCategory(context.Context, int64) (*library.Category, error) {
	return nil, nil
}

func (f *fakeCatalogue) CreateCategory(_ context.Context, c library.Category) (*library.Category, error) {
	return &c, nil
}

func (f *fakeCatalogue) UpdateCategory(_ context.Context, c library.Category) (*library.Category, error) {
	return &c, nil
}

func (f *fakeCatalogue) DeleteCategory(context.Context, int64) (int, error) {
	return f.deleteStatus, f.deleteErr
}

func (f *fakeCatalogue) ListSeries(context.Context) ([]library.Series, error) {
	return f.series, f.seriesErr
}

func (f *fakeCatalogue) GetSeries(context.Context, int64) (*library.Series, error) { return nil, nil }

func (f *fakeCatalogue) CreateSeries(_ context.Context, s library.Series) (*library.Series, error) {
	return &s, nil
}

func (f *fakeCatalogue) UpdateSeries(_ context.Context, s library.Series) (*library.Series, error) {
	return &s, nil
}

func (f *fakeCatalogue) DeleteSeries(context.Context, int64) (int, error) {
	return f.deleteStatus, f.deleteErr
}

var _ library.Catalogue = (*fakeCatalogue)(nil)

func TestLoadCollectionsJoinsAllFetches(t *testing.T) {
	api := &fakeCatalogue{
		books:      []library.Book{{ID: 1, Title: "Dune", Bookshelf: 7}},
		shelves:    []library.Bookshelf{{ID: 7, Name: "Hallway"}},
		categories: []library.Category{{ID: 2, Name: "Fiction"}},
		series:     []library.Series{{ID: 3, Title: "Dune"}},
	}

	msg := loadCollectionsCmd(context.Background(), api)()
	loaded, ok := msg.(collectionsMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Len(t, loaded.data.books, 1)
	assert.Len(t, loaded.data.shelves, 1)
	assert.Len(t, loaded.data.categories, 1)
	assert.Len(t, loaded.data.series, 1)
}

func TestLoadCollectionsDiscardsPartialResults(t *testing.T) {
	api := &fakeCatalogue{
		books:         []library.Book{{ID: 1, Title: "Dune"}},
		shelves:       []library.Bookshelf{{ID: 7, Name: "Hallway"}},
		categoriesErr: errors.New("connection refused"),
	}

	msg := loadCollectionsCmd(context.Background(), api)()
	loaded, ok := msg.(collectionsMsg)
	require.True(t, ok)
	require.Error(t, loaded.err)
	assert.Empty(t, loaded.data.books)
	assert.Empty(t, loaded.data.shelves)
}

func TestLoadShelfFiltersServerSide(t *testing.T) {
	api := &fakeCatalogue{
		shelf: &library.Bookshelf{ID: 7, Name: "Hallway"},
		books: []library.Book{{ID: 1, Title: "Dune", Bookshelf: 7}},
	}

	msg := loadShelfCmd(context.Background(), api, 7)()
	loaded, ok := msg.(shelfDetailMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	require.NotNil(t, loaded.shelf)
	assert.Equal(t, "Hallway", loaded.shelf.Name)
	assert.Len(t, loaded.books, 1)
	assert.Equal(t, int64(7), api.lastBookQuery.Bookshelf)
}

func TestLoadShelfMissingShelf(t *testing.T) {
	api := &fakeCatalogue{}

	msg := loadShelfCmd(context.Background(), api, 99)()
	loaded, ok := msg.(shelfDetailMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Nil(t, loaded.shelf)
}

func TestSaveOutcome(t *testing.T) {
	book := library.Book{ID: 1}
	assert.Equal(t, saveDoneMsg{}, saveOutcome(&book, nil))
	assert.Equal(t, saveDoneMsg{denied: true}, saveOutcome[library.Book](nil, nil))

	boom := errors.New("boom")
	assert.Equal(t, saveDoneMsg{err: boom}, saveOutcome[library.Book](nil, boom))
}

func TestDeleteOutcome(t *testing.T) {
	assert.Equal(t, saveDoneMsg{}, deleteOutcome(http.StatusNoContent, nil))
	assert.Equal(t, saveDoneMsg{denied: true}, deleteOutcome(http.StatusForbidden, nil))

	boom := errors.New("boom")
	assert.Equal(t, saveDoneMsg{err: boom}, deleteOutcome(0, boom))
}

func TestCollectionsHelpers(t *testing.T) {
	data := collections{
		books: []library.Book{
			{ID: 1, Bookshelf: 7},
			{ID: 2, Bookshelf: 7},
			{ID: 3, Bookshelf: 8},
		},
		shelves: []library.Bookshelf{{ID: 7, Name: "Hallway"}, {ID: 8, Name: "Study"}},
	}

	assert.Equal(t, 2, data.booksOnShelf(7))
	assert.Equal(t, 0, data.booksOnShelf(99))

	if shelf := data.shelfByID(8); assert.NotNil(t, shelf) {
		assert.Equal(t, "Study", shelf.Name)
	}
	assert.Nil(t, data.shelfByID(99))
}

func TestFilteredBooksUsesActiveFilter(t *testing.T) {
	m := Model{
		data: collections{books: []library.Book{
			{ID: 1, Title: "Dune", Author: "Frank Herbert"},
			{ID: 2, Title: "Foundation", Author: "Isaac Asimov"},
		}},
	}

	assert.Len(t, m.filteredBooks(), 2)

	m.filter = library.BookFilter{Title: "dun"}
	books := m.filteredBooks()
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestClampSelectionsAfterReload(t *testing.T) {
	m := Model{
		selectedRow: 5,
		shelfRow:    3,
		settingsRow: 9,
		data: collections{
			books:   []library.Book{{ID: 1}},
			shelves: []library.Bookshelf{{ID: 7}},
		},
	}

	m.clampSelections()
	assert.Equal(t, 0, m.selectedRow)
	assert.Equal(t, 0, m.shelfRow)
	assert.Equal(t, 0, m.settingsRow)
}
