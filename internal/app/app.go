package app

import (
	"context"
	"fmt"

	"github.com/tmwhalen/alcove/internal/config"
	"github.com/tmwhalen/alcove/internal/library"
	"github.com/tmwhalen/alcove/internal/logger"
	"github.com/tmwhalen/alcove/internal/prefs"
	"github.com/tmwhalen/alcove/internal/session"
	"github.com/tmwhalen/alcove/internal/ui"
)

// Options configure the alcove application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/alcove/config.toml
	PrefsPath   string // empty uses default ~/.config/alcove/prefs.toml
	SessionPath string // empty uses default ~/.config/alcove/session.toml
	ServerURL   string // overrides the configured backend URL
}

// Run boots the alcove TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	log, err := logger.Init(logger.Options{Level: cfg.LogLevel, Path: cfg.LogPath()})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	// The token holder is shared: the client reads the credential from it on
	// every request, the session store writes it on login and logout.
	creds := &session.TokenHolder{}

	client, err := library.NewClient(cfg.ServerURL, creds, library.Options{
		Timeout: cfg.Timeout(),
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("init catalogue client: %w", err)
	}

	sessionPath := opts.SessionPath
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}
	store := session.New(client, creds, session.Options{
		Path:   sessionPath,
		Logger: log,
	})

	log.Info().Str("server", cfg.ServerURL).Msg("starting alcove")

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    log,
	})
}
