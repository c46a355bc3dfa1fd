package common

// Header names attached to outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
)

// BearerScheme prefixes the session token in the Authorization header.
const BearerScheme = "Bearer"

// Metadata keys under which the session is persisted locally.
const (
	MetadataKeyToken = "token"
	MetadataKeyEmail = "email"
)
