// Package common defines shared constants and sentinel errors used across
// the FaceForward client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNoToken means a successful login response carried no session token.
	ErrNoToken = errors.New("no token in response")
)
