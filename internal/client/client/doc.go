// Package client contains the greeter CLI's transport layer.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, Greetings, Ping and Close.
//  2. A concrete implementation (see APIClient) that talks JSON over HTTP to
//     the API and probes liveness through the server's gRPC health service.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are exposed as sentinel errors matched with errors.Is:
// ErrValidation, ErrConflict, ErrUnauthorized, ErrServer and ErrUnavailable.
// Errors produced from an API response are *APIError values that keep the
// server's message for display. Nothing is retried.
package client
