package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard.
type jwtService struct {
	secret    string
	expiresIn time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	expiresIn := cfg.JWT.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 7 * 24 * time.Hour
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		expiresIn: expiresIn,
	}, nil
}

// Issue signs claims carrying the user's id with the configured expiry.
func (s *jwtService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify validates signature and expiry. Failures map onto the tagged
// sentinels so logs can tell an expired token from a malformed one even
// though the wire response cannot.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, errors.WithStack(service.ErrTokenMissing)
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}

		return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
