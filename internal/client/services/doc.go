// Package services contains the application services behind the FaceForward
// CLI: authentication against the backend with a locally persisted session,
// and the select-then-analyze flow for a single photo.
package services
