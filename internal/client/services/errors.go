package services

import (
	"errors"

	"github.com/dmitrijs2005/faceforward/internal/client/intake"
)

var (
	ErrNoImage = errors.New("no image selected")
)

// RequestError is a failed API call. Its text is meant for the user.
type RequestError struct {
	Op      string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Message returns the text to show the user for err.
func Message(err error) string {
	if errors.Is(err, ErrNoImage) {
		return "Please upload an image first."
	}
	return intake.Message(err)
}
