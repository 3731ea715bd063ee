package service

// TokenKind selects which of the two signed token flavours an operation
// refers to. Each kind has its own secret and its own lifetime.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential sent with API requests.
	TokenKindAccess TokenKind = "access token"
	// TokenKindRefresh is the longer-lived credential used to obtain new
	// access tokens without re-authenticating.
	TokenKindRefresh TokenKind = "refresh token"
)

// Claims is the decoded payload of a verified token.
type Claims struct {
	UserID string
	Kind   TokenKind
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccess signs a new access token bound to the user id.
	IssueAccess(userID string) (string, error)

	// IssueRefresh signs a new refresh token bound to the user id.
	IssueRefresh(userID string) (string, error)

	// Verify checks signature, expiry and kind of a token string and returns
	// its decoded claims.
	Verify(tokenString string, kind TokenKind) (*Claims, error)
}
