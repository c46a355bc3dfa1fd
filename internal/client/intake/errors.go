package intake

import "errors"

var (
	ErrNoFiles      = errors.New("no files selected")
	ErrInvalidType  = errors.New("invalid file type")
	ErrTooLarge     = errors.New("file too large")
	ErrReadFailed   = errors.New("file read failed")
	ErrDecodeFailed = errors.New("image decode failed")
)

var userMessages = []struct {
	err error
	msg string
}{
	{ErrNoFiles, "No files detected. Please select image files."},
	{ErrInvalidType, "Invalid file type. Please upload JPG or PNG images."},
	{ErrTooLarge, "File is too large. Maximum size is 10MB."},
	{ErrReadFailed, "Error reading file. Please try again."},
	{ErrDecodeFailed, "Error loading image. Please try another file."},
}

// Message returns the user-facing text for an intake error. Errors that do
// not come from this package are returned as their own text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
