// Package session keeps the FaceForward login session in the local
// metadata store.
//
// A session is the opaque token returned by the backend plus the e-mail it
// was issued for. The token survives restarts until Clear is called; the
// client never refreshes or expires it on its own.
package session
