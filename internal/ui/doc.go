// Package ui implements alcove's terminal interface as a Bubble Tea program.
//
// # Structure
//
// The root Model owns a View enum (home, catalogue, bookshelves, shelf
// detail, settings, login, register, not-found) and routes every navigation
// through the authorization gate: protected views are swapped for the login
// view whenever no authenticated user (or a user missing a required role) is
// present.
//
// Data-bearing views load their collections on entry with a single join-all
// command; a failed join discards partial results and surfaces an error
// banner. Mutations run through modal forms implementing the Modal
// interface, and every successful save or delete re-runs the owning view's
// full fetch instead of patching local state.
package ui
