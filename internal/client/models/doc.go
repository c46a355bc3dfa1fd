// Package models defines the client-side view of the analysis API payloads.
//
// The backend returns loosely structured JSON; these types give every field
// a defined optional value so callers never dereference a missing key.
package models
