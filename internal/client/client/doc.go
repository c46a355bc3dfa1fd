// Package client contains client-side building blocks for FaceForward.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) for the FaceForward
//     backend: Login, Register and Upload.
//  2. A concrete REST implementation (see HTTPClient). Every request goes
//     through a shared transport that reads the session token at send time
//     and attaches it as a bearer credential, together with a request ID.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Results
//
// API calls never return Go errors. Each call yields a Result whose Message
// carries, in order of preference, the message sent by the server, the
// transport error text, or a per-operation fallback.
package client
