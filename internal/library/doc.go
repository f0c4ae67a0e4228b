// Package library provides the HTTP client for the catalogue backend API.
//
// # Overview
//
// This package defines the resource-access layer for the personal library
// backend: books, bookshelves, categories and series, plus the authentication
// endpoints the session store builds on. It handles HTTP communication, JSON
// serialization, and type-safe representation of the backend's payloads.
//
// # Result contract
//
// Expected API rejections are values, not errors. Any read, create or update
// that comes back with a non-2xx status yields the type's zero value and a
// nil error; only transport failures (connection refused, timeout, DNS) and
// malformed response bodies produce a non-nil error. Delete operations
// instead return the final HTTP status code so callers can inspect the
// outcome themselves.
//
// # Authentication
//
// Every request asks the configured CredentialSource for the current bearer
// token and, when one is held, attaches it as an Authorization header. The
// client never stores or refreshes tokens itself; that lifecycle belongs to
// the session package.
//
// # Caching
//
// There is none. Every call hits the backend, and callers are expected to
// re-list collections after any mutation rather than patch local copies.
package library
