package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmwhalen/alcove/internal/library"
	"github.com/tmwhalen/alcove/internal/session"
)

// collections is the full data set the signed-in views render from.
type collections struct {
	books      []library.Book
	shelves    []library.Bookshelf
	categories []library.Category
	series     []library.Series
}

// shelfByID returns the shelf with the given id, or nil.
func (c collections) shelfByID(id int64) *library.Bookshelf {
	for i := range c.shelves {
		if c.shelves[i].ID == id {
			return &c.shelves[i]
		}
	}
	return nil
}

// booksOnShelf counts catalogued books assigned to a shelf.
func (c collections) booksOnShelf(id int64) int {
	n := 0
	for _, b := range c.books {
		if b.Bookshelf == id {
			n++
		}
	}
	return n
}

// Messages

// sessionMsg carries the result of the startup identity check.
type sessionMsg struct {
	user *library.User
	err  error
}

// loginMsg carries a login attempt's outcome. A nil user with a nil error
// means the backend rejected the credentials.
type loginMsg struct {
	user *library.User
	err  error
}

// registerMsg carries a registration attempt's outcome.
type registerMsg struct {
	user *library.User
	err  error
}

type logoutMsg struct{ err error }

// collectionsMsg is the joined result of the four collection fetches. Any
// fetch failure discards the whole batch.
type collectionsMsg struct {
	data collections
	err  error
}

// shelfDetailMsg carries one shelf plus its server-filtered books. A nil
// shelf with a nil error means the shelf does not exist.
type shelfDetailMsg struct {
	shelf *library.Bookshelf
	books []library.Book
	err   error
}

// saveDoneMsg reports a mutation outcome back to the modal that issued it.
type saveDoneMsg struct {
	err    error // transport or decode failure
	denied bool  // backend rejected the mutation
}

// lookupMsg carries ISBN lookup metadata back to the book form. A nil info
// with a nil error means the ISBN is unknown.
type lookupMsg struct {
	info *library.VolumeInfo
	err  error
}

// refreshMsg asks the root model to re-fetch the current view's data. Modals
// emit it after a successful mutation instead of patching local state.
type refreshMsg struct{}

// filterAppliedMsg carries a new search filter from the search form.
type filterAppliedMsg struct {
	filter library.BookFilter
}

// Commands

func bootCmd(ctx context.Context, store *session.Store) tea.Cmd {
	return func() tea.Msg {
		user, err := store.WhoAmI(ctx)
		return sessionMsg{user: user, err: err}
	}
}

func loginCmd(ctx context.Context, store *session.Store, username, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := store.Login(ctx, username, password)
		return loginMsg{user: user, err: err}
	}
}

func registerCmd(ctx context.Context, store *session.Store, profile library.RegisterProfile) tea.Cmd {
	return func() tea.Msg {
		user, err := store.Register(ctx, profile)
		return registerMsg{user: user, err: err}
	}
}

func logoutCmd(ctx context.Context, store *session.Store) tea.Cmd {
	return func() tea.Msg {
		return logoutMsg{err: store.Logout(ctx)}
	}
}

// loadCollectionsCmd fetches all four collections concurrently and joins the
// results. Partial results are never surfaced: one failed fetch fails the
// whole load.
func loadCollectionsCmd(ctx context.Context, api library.Catalogue) tea.Cmd {
	return func() tea.Msg {
		var (
			data collections
			errs [4]error
			wg   sync.WaitGroup
		)
		wg.Add(4)
		go func() {
			defer wg.Done()
			data.books, errs[0] = api.ListBooks(ctx, library.BookQuery{})
		}()
		go func() {
			defer wg.Done()
			data.shelves, errs[1] = api.ListBookshelves(ctx)
		}()
		go func() {
			defer wg.Done()
			data.categories, errs[2] = api.ListCategories(ctx)
		}()
		go func() {
			defer wg.Done()
			data.series, errs[3] = api.ListSeries(ctx)
		}()
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return collectionsMsg{err: err}
			}
		}
		return collectionsMsg{data: data}
	}
}

// loadShelfCmd fetches one shelf and its books concurrently. The book list
// is filtered server-side through the bookshelf query parameter.
func loadShelfCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		var (
			shelf    *library.Bookshelf
			books    []library.Book
			shelfErr error
			bookErr  error
			wg       sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			shelf, shelfErr = api.GetBookshelf(ctx, id)
		}()
		go func() {
			defer wg.Done()
			books, bookErr = api.ListBooks(ctx, library.BookQuery{Bookshelf: id})
		}()
		wg.Wait()

		if shelfErr != nil {
			return shelfDetailMsg{err: shelfErr}
		}
		if bookErr != nil {
			return shelfDetailMsg{err: bookErr}
		}
		return shelfDetailMsg{shelf: shelf, books: books}
	}
}

func lookupISBNCmd(ctx context.Context, api library.Catalogue, isbn string) tea.Cmd {
	return func() tea.Msg {
		info, err := api.SearchISBN(ctx, isbn)
		return lookupMsg{info: info, err: err}
	}
}

// saveOutcome folds a create/update result into a saveDoneMsg.
func saveOutcome[T any](record *T, err error) tea.Msg {
	if err != nil {
		return saveDoneMsg{err: err}
	}
	if record == nil {
		return saveDoneMsg{denied: true}
	}
	return saveDoneMsg{}
}

// deleteOutcome folds a delete status into a saveDoneMsg.
func deleteOutcome(status int, err error) tea.Msg {
	if err != nil {
		return saveDoneMsg{err: err}
	}
	if status < 200 || status >= 300 {
		return saveDoneMsg{denied: true}
	}
	return saveDoneMsg{}
}

func saveBookCmd(ctx context.Context, api library.Catalogue, book library.Book) tea.Cmd {
	return func() tea.Msg {
		if book.ID > 0 {
			return saveOutcome(api.UpdateBook(ctx, book))
		}
		return saveOutcome(api.CreateBook(ctx, book))
	}
}

func deleteBookCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteOutcome(api.DeleteBook(ctx, id))
	}
}

func saveShelfCmd(ctx context.Context, api library.Catalogue, shelf library.Bookshelf) tea.Cmd {
	return func() tea.Msg {
		if shelf.ID > 0 {
			return saveOutcome(api.UpdateBookshelf(ctx, shelf))
		}
		return saveOutcome(api.CreateBookshelf(ctx, shelf))
	}
}

func deleteShelfCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteOutcome(api.DeleteBookshelf(ctx, id))
	}
}

func saveCategoryCmd(ctx context.Context, api library.Catalogue, category library.Category) tea.Cmd {
	return func() tea.Msg {
		if category.ID > 0 {
			return saveOutcome(api.UpdateCategory(ctx, category))
		}
		return saveOutcome(api.CreateCategory(ctx, category))
	}
}

func deleteCategoryCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteOutcome(api.DeleteCategory(ctx, id))
	}
}

func saveSeriesCmd(ctx context.Context, api library.Catalogue, series library.Series) tea.Cmd {
	return func() tea.Msg {
		if series.ID > 0 {
			return saveOutcome(api.UpdateSeries(ctx, series))
		}
		return saveOutcome(api.CreateSeries(ctx, series))
	}
}

func deleteSeriesCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteOutcome(api.DeleteSeries(ctx, id))
	}
}
