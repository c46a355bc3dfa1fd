package intake

// Limits applied to every candidate.
const (
	MaxFileSize     = 10 * 1024 * 1024
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

// Validate checks the candidate's declared type and size.
func Validate(c Candidate) error {
	switch c.ContentType() {
	case ContentTypeJPEG, ContentTypePNG:
	default:
		return ErrInvalidType
	}
	if c.Size() > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}
