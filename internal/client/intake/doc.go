// Package intake turns user-selected image files into the normalized upload
// the analysis API expects.
//
// A selection is a list of Candidates (local files or S3 objects). Each one
// is checked for type (JPEG or PNG) and size (10 MiB at most); the first
// accepted candidate is decoded, stretched to 512x512 without keeping the
// aspect ratio and re-encoded as a quality-90 JPEG named "<base>.jpg".
//
// Failures are reported as the sentinel errors below; Message maps them to
// the text shown to the user.
package intake
