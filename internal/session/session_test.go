package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwhalen/alcove/internal/library"
)

// fakeBackend scripts the auth endpoints the store depends on.
type fakeBackend struct {
	tokens   map[string]string // password → access token
	users    map[string]*library.User
	active   string // token the backend currently accepts
	rejected bool   // force RegisterUser rejection
	netErr   error

	invalidated int
	registered  []library.RegisterProfile
}

func (f *fakeBackend) ObtainToken(_ context.Context, username, password string) (*library.TokenPair, error) {
	if f.netErr != nil {
		return nil, f.netErr
	}
	token, ok := f.tokens[password]
	if !ok {
		return nil, nil
	}
	f.active = token
	return &library.TokenPair{Access: token, Refresh: "refresh-" + token}, nil
}

func (f *fakeBackend) InvalidateSession(context.Context) error {
	f.invalidated++
	f.active = ""
	return nil
}

func (f *fakeBackend) CurrentUser(context.Context) (*library.User, error) {
	if f.netErr != nil {
		return nil, f.netErr
	}
	if user, ok := f.users[f.active]; ok {
		return user, nil
	}
	return nil, nil
}

func (f *fakeBackend) RegisterUser(_ context.Context, profile library.RegisterProfile) (*library.User, error) {
	if f.rejected {
		return nil, nil
	}
	f.registered = append(f.registered, profile)
	token := "tok-" + profile.Username
	f.tokens[profile.Password] = token
	f.users[token] = &library.User{Username: profile.Username, Email: profile.Email}
	return f.users[token], nil
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tokens: map[string]string{"hunter22": "tok-frank"},
		users:  map[string]*library.User{"tok-frank": {ID: 1, Username: "frank", Roles: []string{"reader"}}},
	}
}

func newTestStore(t *testing.T, api Backend, path string) (*Store, *TokenHolder) {
	t.Helper()
	creds := &TokenHolder{}
	return New(api, creds, Options{Path: path}), creds
}

func TestLogin_SuccessResolvesUserAndHoldsToken(t *testing.T) {
	store, creds := newTestStore(t, newFakeBackend(), "")

	user, err := store.Login(context.Background(), "frank", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "frank", user.Username)
	assert.Equal(t, "tok-frank", creds.Token())
	assert.True(t, store.LoggedIn())
	assert.Equal(t, "frank", store.CurrentUser().Username)
}

func TestLogin_RejectionLeavesStoreLoggedOut(t *testing.T) {
	store, creds := newTestStore(t, newFakeBackend(), "")

	user, err := store.Login(context.Background(), "frank", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, creds.Token())
	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.CurrentUser())
}

func TestLogin_TransportFailureIsError(t *testing.T) {
	api := newFakeBackend()
	api.netErr = errors.New("connection refused")
	store, _ := newTestStore(t, api, "")

	_, err := store.Login(context.Background(), "frank", "hunter22")
	assert.Error(t, err)
	assert.False(t, store.LoggedIn())
}

func TestWhoAmI_ShortCircuitsWithoutCredential(t *testing.T) {
	api := newFakeBackend()
	api.netErr = errors.New("should not be called")
	store, _ := newTestStore(t, api, "")

	user, err := store.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestWhoAmI_DiscardsExpiredCredential(t *testing.T) {
	api := newFakeBackend()
	store, creds := newTestStore(t, api, "")

	_, err := store.Login(context.Background(), "frank", "hunter22")
	require.NoError(t, err)

	// Backend stops accepting the token.
	api.active = ""

	user, err := store.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, creds.Token())
}

func TestLogout_ClearsEverythingAndInformsBackend(t *testing.T) {
	api := newFakeBackend()
	store, creds := newTestStore(t, api, "")

	_, err := store.Login(context.Background(), "frank", "hunter22")
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background()))
	assert.Empty(t, creds.Token())
	assert.Nil(t, store.CurrentUser())
	assert.Equal(t, 1, api.invalidated)
	assert.Equal(t, "not signed in", store.Describe())
}

func TestRegister_EstablishesLoggedInSession(t *testing.T) {
	api := newFakeBackend()
	store, _ := newTestStore(t, api, "")

	user, err := store.Register(context.Background(), library.RegisterProfile{
		FirstName: "Ada", LastName: "Lovelace",
		Username: "ada", Email: "ada@example.com", Password: "difference-engine",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada", user.Username)
	assert.True(t, store.LoggedIn())
	require.Len(t, api.registered, 1)
}

func TestRegister_RejectionYieldsEmptyResult(t *testing.T) {
	api := newFakeBackend()
	api.rejected = true
	store, _ := newTestStore(t, api, "")

	user, err := store.Register(context.Background(), library.RegisterProfile{Username: "dupe"})
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, store.LoggedIn())
}

func TestTokenPersistence_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	api := newFakeBackend()

	store, _ := newTestStore(t, api, path)
	_, err := store.Login(context.Background(), "frank", "hunter22")
	require.NoError(t, err)

	// A fresh store resumes the persisted token.
	creds2 := &TokenHolder{}
	New(api, creds2, Options{Path: path})
	assert.Equal(t, "tok-frank", creds2.Token())

	// Logout removes the file.
	require.NoError(t, store.Logout(context.Background()))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDescribe_IncludesRoles(t *testing.T) {
	store, _ := newTestStore(t, newFakeBackend(), "")
	_, err := store.Login(context.Background(), "frank", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "frank (reader)", store.Describe())
}
