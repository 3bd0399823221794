package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Tagged verification failures. The wire response collapses all of them to
// a uniform 401, but logs keep the distinction.
var (
	ErrTokenMissing   = errors.New("token must be provided")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims is the payload carried by a bearer token. UserID maps to the _id
// claim minted at login; it is not re-validated on verification, so a token
// without it still verifies (lenient by contract).
type Claims struct {
	UserID string `json:"_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying the signed
// bearer tokens presented on protected routes.
type TokenService interface {
	// Issue signs a token carrying the user's id, with the configured expiry.
	Issue(userID string) (string, error)

	// Verify validates signature and expiry and returns the decoded claims.
	// Failures are tagged with the Err* sentinels above.
	Verify(token string) (*Claims, error)
}
