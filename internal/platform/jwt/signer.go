package jwt

import "time"

// Claims represents the token claims that matter for authentication.
type Claims struct {
	StaffID string
}

// Signer defines methods for signing and verifying access tokens.
type Signer interface {
	Sign(subject string, audience []string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
