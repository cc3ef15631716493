package ports

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
//
// Issue fails with domain.ErrTokenCreation when the signing subsystem is
// misconfigured. Validate returns domain.ErrTokenInvalid for any malformed,
// tampered, mis-issued, or expired token — it never panics on bad input.
type TokenService interface {
	Issue(username, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
