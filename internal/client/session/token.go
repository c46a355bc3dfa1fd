package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what can be read from a token without contacting the backend.
type Info struct {
	// Opaque is true when the token is not a JWT; the other fields are then
	// empty.
	Opaque    bool
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that lies before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Describe reads the claims of a JWT-shaped token without verifying its
// signature. The client cannot verify it and only uses it for display.
func Describe(token string) Info {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{Opaque: true}
	}

	var info Info
	info.Subject, _ = claims.GetSubject()
	if exp, _ := claims.GetExpirationTime(); exp != nil {
		info.ExpiresAt = exp.Time
	}
	if iat, _ := claims.GetIssuedAt(); iat != nil {
		info.IssuedAt = iat.Time
	}
	for _, k := range []string{"email", "username"} {
		if s, ok := claims[k].(string); ok && s != "" {
			info.Email = s
			break
		}
	}
	return info
}
