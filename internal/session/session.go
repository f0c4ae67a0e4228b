// Package session owns the authentication credential and its lifecycle.
//
// The store represents "who, if anyone, is logged in" as explicit injectable
// state: the UI reads the cached user, the library client reads the bearer
// token through the TokenHolder, and only Login, Logout, Register and WhoAmI
// ever write either. The credential design is bearer-token based; logout is
// local token destruction plus a best-effort backend invalidation call.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tmwhalen/alcove/internal/library"
)

// Backend is the slice of the API client the session store depends on.
type Backend interface {
	ObtainToken(ctx context.Context, username, password string) (*library.TokenPair, error)
	InvalidateSession(ctx context.Context) error
	CurrentUser(ctx context.Context) (*library.User, error)
	RegisterUser(ctx context.Context, profile library.RegisterProfile) (*library.User, error)
}

// TokenHolder hands the current bearer token to the library client. It
// exists as a separate object so the client can be constructed before the
// store that manages the token.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// Token implements library.CredentialSource.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *TokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Store coordinates the credential and the resolved user behind it.
type Store struct {
	mu    sync.RWMutex
	api   Backend
	creds *TokenHolder
	path  string // session file; empty disables persistence
	user  *library.User
	log   zerolog.Logger
}

// Options configure the store.
type Options struct {
	// Path is the session file holding the persisted token. Empty keeps the
	// credential in memory only.
	Path   string
	Logger zerolog.Logger
}

// New builds a Store and resumes any persisted credential. The resumed token
// is unverified until the first WhoAmI.
func New(api Backend, creds *TokenHolder, opts Options) *Store {
	s := &Store{
		api:   api,
		creds: creds,
		path:  opts.Path,
		log:   opts.Logger,
	}
	if s.path != "" {
		if token := loadToken(s.path); token != "" {
			creds.set(token)
		}
	}
	return s
}

// Login exchanges credentials for a token and resolves the user behind it.
// Rejected credentials yield (nil, nil) and leave the store logged out.
func (s *Store) Login(ctx context.Context, username, password string) (*library.User, error) {
	pair, err := s.api.ObtainToken(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		s.log.Debug().Str("username", username).Msg("login rejected")
		return nil, nil
	}

	s.creds.set(pair.Access)
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.clear()
		return nil, err
	}
	if user == nil {
		// Token accepted but identity lookup rejected. Treat as a failed
		// login rather than holding a credential we cannot resolve.
		s.clear()
		return nil, nil
	}

	s.setUser(user)
	s.persist(pair.Access)
	s.log.Info().Str("username", user.Username).Msg("logged in")
	return user, nil
}

// Logout destroys the local credential and tells the backend, best effort.
func (s *Store) Logout(ctx context.Context) error {
	if s.creds.Token() != "" {
		if err := s.api.InvalidateSession(ctx); err != nil {
			s.log.Debug().Err(err).Msg("backend logout failed; clearing local credential anyway")
		}
	}
	s.clear()
	s.log.Info().Msg("logged out")
	return nil
}

// WhoAmI resolves the identity behind the held credential. With no credential
// it short-circuits to (nil, nil) without touching the network. A credential
// the backend no longer accepts is discarded.
func (s *Store) WhoAmI(ctx context.Context) (*library.User, error) {
	if s.creds.Token() == "" {
		return nil, nil
	}
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.clear()
		return nil, nil
	}
	s.setUser(user)
	return user, nil
}

// Register submits a new-user profile and, on success, establishes a
// logged-in session for it. With the bearer-token design that means a
// follow-up token exchange with the just-registered credentials before the
// identity fetch. A rejected registration yields (nil, nil).
func (s *Store) Register(ctx context.Context, profile library.RegisterProfile) (*library.User, error) {
	created, err := s.api.RegisterUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	return s.Login(ctx, profile.Username, profile.Password)
}

// CurrentUser returns the cached user snapshot, or nil when logged out.
func (s *Store) CurrentUser() *library.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a credential is currently held.
func (s *Store) LoggedIn() bool {
	return s.creds.Token() != ""
}

func (s *Store) setUser(user *library.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Store) clear() {
	s.creds.set("")
	s.setUser(nil)
	if s.path != "" {
		if err := removeToken(s.path); err != nil {
			s.log.Debug().Err(err).Msg("remove session file failed")
		}
	}
}

func (s *Store) persist(token string) {
	if s.path == "" {
		return
	}
	if err := saveToken(s.path, token); err != nil {
		s.log.Warn().Err(err).Msg("persist session token failed")
	}
}

// Describe renders a short session summary for the navigation header.
func (s *Store) Describe() string {
	user := s.CurrentUser()
	if user == nil {
		return "not signed in"
	}
	if roles := strings.Join(user.Roles, ","); roles != "" {
		return fmt.Sprintf("%s (%s)", user.Username, roles)
	}
	return user.Username
}
