package client

import "errors"

var (
	ErrNoData = errors.New("result carries no data")
)

// Fallback messages used when neither the server nor the transport explain
// a failure.
const (
	LoginFailedMessage        = "Login failed. Please try again."
	RegistrationFailedMessage = "Registration failed. Please try again."
	AnalysisFailedMessage     = "Analysis failed. Please try again."
)
