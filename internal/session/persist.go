package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// sessionFile is the on-disk shape of the persisted credential.
type sessionFile struct {
	Token string `toml:"token"`
}

const defaultSessionPath = "~/.config/alcove/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// loadToken reads a persisted token, returning "" on any failure. A missing
// or unreadable session file just means a logged-out start.
func loadToken(path string) string {
	resolved, err := expandPath(path)
	if err != nil {
		return ""
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return ""
	}
	var file sessionFile
	if err := toml.Unmarshal(bytes, &file); err != nil {
		return ""
	}
	return strings.TrimSpace(file.Token)
}

// saveToken writes the token to the session file, creating directories as
// needed. The file is user-readable only.
func saveToken(path, token string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	bytes, err := toml.Marshal(sessionFile{Token: token})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// removeToken deletes the session file; a missing file is not an error.
func removeToken(path string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
