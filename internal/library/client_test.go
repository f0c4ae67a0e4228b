package library

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var creds CredentialSource
	if token != "" {
		creds = staticToken(token)
	}
	c, err := NewClient(server.URL, creds, Options{Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "127.0.0.1:8000", u.Host)

	u, err = parseBaseURL("books.example.com:9000")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "books.example.com:9000", u.Host)

	u, err = parseBaseURL("https://example.com/base?x=1#frag")
	require.NoError(t, err)
	assert.Empty(t, u.Path)
	assert.Empty(t, u.RawQuery)
	assert.Empty(t, u.Fragment)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAgent string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		_ = json.NewEncoder(w).Encode([]Book{})
	}), "tok-123")

	_, err := c.ListBooks(context.Background(), BookQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, defaultUserAgent, gotAgent)
}

func TestClient_AnonymousWithoutCredential(t *testing.T) {
	t.Parallel()

	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Bookshelf{})
	}), "")

	_, err := c.ListBookshelves(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_RejectionIsEmptyResultNotError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}), "expired")

	ctx := context.Background()

	books, err := c.ListBooks(ctx, BookQuery{})
	require.NoError(t, err)
	assert.Nil(t, books)

	book, err := c.GetBook(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, book)

	created, err := c.CreateCategory(ctx, Category{Name: "Fantasy"})
	require.NoError(t, err)
	assert.Nil(t, created)

	user, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestClient_TransportFailureIsError(t *testing.T) {
	t.Parallel()

	c, err := NewClient("http://127.0.0.1:0", nil, Options{Timeout: 200 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.ListBooks(context.Background(), BookQuery{})
	assert.Error(t, err)
}

func TestClient_BookCRUDPathsAndPayloads(t *testing.T) {
	t.Parallel()

	var gotPaths []string
	var gotQuery string
	var gotBody Book
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/books/" && r.Method == http.MethodGet:
			gotQuery = r.URL.RawQuery
			_ = json.NewEncoder(w).Encode([]Book{{ID: 1, ISBN: "9780441013593", Title: "Dune"}})
		case r.URL.Path == "/api/books/" && r.Method == http.MethodPost:
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			gotBody.ID = 2
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(gotBody)
		case r.URL.Path == "/api/books/2/" && r.Method == http.MethodPut:
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(gotBody)
		case r.URL.Path == "/api/books/2/" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})
	c := newTestClient(t, handler, "tok")

	ctx := context.Background()

	books, err := c.ListBooks(ctx, BookQuery{Bookshelf: 3})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "bookshelf=3", gotQuery)

	created, err := c.CreateBook(ctx, Book{ISBN: "9780553293357", Bookshelf: 3})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, "9780553293357", gotBody.ISBN)

	created.Subtitle = "revised"
	updated, err := c.UpdateBook(ctx, *created)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "revised", updated.Subtitle)

	status, err := c.DeleteBook(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)

	assert.Contains(t, gotPaths, "PUT /api/books/2/")
	assert.Contains(t, gotPaths, "DELETE /api/books/2/")
}

func TestClient_UpdateRequiresID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.NotFoundHandler(), "tok")

	_, err := c.UpdateBook(context.Background(), Book{})
	assert.Error(t, err)
	_, err = c.UpdateBookshelf(context.Background(), Bookshelf{Name: "x"})
	assert.Error(t, err)
	_, err = c.UpdateCategory(context.Background(), Category{Name: "x"})
	assert.Error(t, err)
	_, err = c.UpdateSeries(context.Background(), Series{Title: "x"})
	assert.Error(t, err)
}

func TestClient_SearchISBN(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/search/" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("isbn") == "9780441013593" {
			_ = json.NewEncoder(w).Encode(VolumeInfo{Title: "Dune", Authors: []string{"Frank Herbert"}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	c := newTestClient(t, handler, "tok")

	info, err := c.SearchISBN(context.Background(), "9780441013593")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Dune", info.Title)

	missing, err := c.SearchISBN(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = c.SearchISBN(context.Background(), "  ")
	assert.Error(t, err)
}

func TestClient_AuthEndpoints(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/token/":
			var creds struct{ Username, Password string }
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != "hunter22" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(TokenPair{Access: "acc", Refresh: "ref"})
		case "/api/users/me/":
			_ = json.NewEncoder(w).Encode(User{ID: 9, Username: "frank"})
		case "/api/register/":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(User{ID: 10, Username: "newbie"})
		case "/api/logout/":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	})
	c := newTestClient(t, handler, "")

	ctx := context.Background()

	pair, err := c.ObtainToken(ctx, "frank", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "acc", pair.Access)

	denied, err := c.ObtainToken(ctx, "frank", "wrong")
	require.NoError(t, err)
	assert.Nil(t, denied)

	user, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "frank", user.Username)

	registered, err := c.RegisterUser(ctx, RegisterProfile{Username: "newbie"})
	require.NoError(t, err)
	require.NotNil(t, registered)

	assert.NoError(t, c.InvalidateSession(ctx))
}
