// Package middleware contains the HTTP middleware chain, including the
// authentication and authorization gates in front of protected routes.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// identityKey is the echo.Context key the verified claims live under.
const identityKey = "auth_claims"

// AuthMiddleware provides the two authorization gates: RequireSignIn for
// any authenticated route and IsAdmin layered on top for admin routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// RequireSignIn verifies the bearer token on the Authorization header.
//
// The header value is passed to verification as-is. Clients send the raw
// token without a "Bearer " prefix; a prefixed value fails verification and
// is rejected like any other bad token. Every failure collapses to the same
// 401 body so callers cannot probe which check tripped.
//
// Verified claims are planted on the context even when the id claim is
// absent. Downstream gates decide whether they need it.
func (m *AuthMiddleware) RequireSignIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(echo.HeaderAuthorization)

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Warn("Rejected unauthenticated request",
				slog.String("path", c.Path()),
				slog.Any("error", err))

			return response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		}

		SetIdentity(c, claims)

		return next(c)
	}
}

// IsAdmin authorizes the already-authenticated caller against a fresh user
// record. Must be used AFTER RequireSignIn.
//
// The role is re-read from the store on every request, so a demotion takes
// effect immediately even while the token is still valid. A non-admin role
// gets the dedicated refusal body; any lookup failure gets the diagnostic
// body with the error attached.
func (m *AuthMiddleware) IsAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		user, err := m.lookupCaller(c)
		if err != nil {
			logger.Error("Admin check failed", slog.Any("error", err))

			return response.FailWithErr(c, http.StatusUnauthorized, "Error in admin middleware", err)
		}

		if !user.Role.IsAdmin() {
			logger.Warn("Refused non-admin access",
				slog.String("path", c.Path()),
				slog.String("userId", user.ID.Hex()))

			return response.Fail(c, http.StatusUnauthorized, "Unauthorized Access")
		}

		return next(c)
	}
}

// SetIdentity plants verified claims on the request context.
func SetIdentity(c echo.Context, claims *service.Claims) {
	c.Set(identityKey, claims)
}

// IdentityFrom returns the verified claims planted by RequireSignIn, or nil
// when the route was reached without it.
func IdentityFrom(c echo.Context) *service.Claims {
	if claims, ok := c.Get(identityKey).(*service.Claims); ok {
		return claims
	}

	return nil
}

func (m *AuthMiddleware) lookupCaller(c echo.Context) (*entity.User, error) {
	claims := IdentityFrom(c)

	var rawID string
	if claims != nil {
		rawID = claims.UserID
	}

	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, err
	}

	return m.userRepo.FindByID(c.Request().Context(), id)
}
