// Package app is the composition root for the alcove application.
//
// Run wires the pieces together in order: configuration (TOML file plus
// ALCOVE_* environment overrides), the file-backed logger, theme
// preferences, the shared token holder, the catalogue HTTP client, and the
// session store that resumes any persisted credential. The UI then owns the
// process until the user quits or the context is cancelled.
//
// Business logic lives in the domain packages (library, session, ui); this
// package only connects them with sensible defaults.
package app
