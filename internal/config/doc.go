// Package config loads alcove's configuration from its TOML config file,
// with ALCOVE_* environment variables taking precedence over file values and
// sensible defaults covering a missing file entirely.
package config
