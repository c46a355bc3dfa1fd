// Package cli provides the interactive FaceForward command-line client.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. Typical flow: login, select a photo (local path or
// s3://bucket/key), analyze it and read the printed assessment.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Select and Analyze a photo
//   - Show the current result, Preview the normalized image
package cli
