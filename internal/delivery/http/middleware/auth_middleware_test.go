package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockrepo "storefront/internal/mocks/repository"
	mockservice "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestMiddleware(tokenSvc *mockservice.TokenService, userRepo *mockrepo.UserRepository) *AuthMiddleware {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenSvc, userRepo, logger)
}

func invoke(mw echo.MiddlewareFunc, token string, nextCalled *bool) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/test", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		*nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec, c
}

func TestRequireSignIn_MissingHeader(t *testing.T) {
	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Verify", "").Return(nil, service.ErrTokenMissing)

	mw := newTestMiddleware(tokenSvc, new(mockrepo.UserRepository))

	nextCalled := false
	rec, _ := invoke(mw.RequireSignIn, "", &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, rec.Body.String())
}

func TestRequireSignIn_InvalidToken(t *testing.T) {
	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Verify", "garbage").Return(nil, service.ErrTokenMalformed)

	mw := newTestMiddleware(tokenSvc, new(mockrepo.UserRepository))

	nextCalled := false
	rec, _ := invoke(mw.RequireSignIn, "garbage", &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, rec.Body.String())
}

func TestRequireSignIn_BearerPrefixIsNotStripped(t *testing.T) {
	// The header value goes to verification untouched, so a prefixed token
	// must reach Verify with the prefix still attached.
	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Verify", "Bearer valid-token").Return(nil, service.ErrTokenMalformed)

	mw := newTestMiddleware(tokenSvc, new(mockrepo.UserRepository))

	nextCalled := false
	rec, _ := invoke(mw.RequireSignIn, "Bearer valid-token", &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertExpectations(t)
}

func TestRequireSignIn_ValidTokenSetsIdentity(t *testing.T) {
	claims := &service.Claims{UserID: "64b0c5e2f1a2b3c4d5e6f7a8"}
	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Verify", "valid-token").Return(claims, nil)

	mw := newTestMiddleware(tokenSvc, new(mockrepo.UserRepository))

	nextCalled := false
	rec, c := invoke(mw.RequireSignIn, "valid-token", &nextCalled)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims, IdentityFrom(c))
}

func TestRequireSignIn_ClaimsWithoutIDStillPass(t *testing.T) {
	// A verifiable token without an id claim is let through; the admin gate
	// is where the missing id finally fails.
	claims := &service.Claims{}
	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Verify", "valid-token").Return(claims, nil)

	mw := newTestMiddleware(tokenSvc, new(mockrepo.UserRepository))

	nextCalled := false
	rec, c := invoke(mw.RequireSignIn, "valid-token", &nextCalled)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims, IdentityFrom(c))
}

func adminInvoke(t *testing.T, mw *AuthMiddleware, claims *service.Claims, nextCalled *bool) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/admin-auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(identityKey, claims)
	}

	handler := mw.IsAdmin(func(c echo.Context) error {
		*nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec
}

func TestIsAdmin_AdminPasses(t *testing.T) {
	adminID := primitive.NewObjectID()
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)

	mw := newTestMiddleware(new(mockservice.TokenService), userRepo)

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{UserID: adminID.Hex()}, &nextCalled)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIsAdmin_RegularUserRefused(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	mw := newTestMiddleware(new(mockservice.TokenService), userRepo)

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{UserID: userID.Hex()}, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized Access"}`, rec.Body.String())
}

func TestIsAdmin_OutOfRangeRoleRefused(t *testing.T) {
	// Only the exact admin value passes; a role of 2 is not "at least admin".
	userID := primitive.NewObjectID()
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.Role(2)}, nil)

	mw := newTestMiddleware(new(mockservice.TokenService), userRepo)

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{UserID: userID.Hex()}, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized Access"}`, rec.Body.String())
}

func TestIsAdmin_LookupFailure(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).
		Return(nil, errors.New("connection reset"))

	mw := newTestMiddleware(new(mockservice.TokenService), userRepo)

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{UserID: userID.Hex()}, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"error":"connection reset","message":"Error in admin middleware"}`,
		rec.Body.String())
}

func TestIsAdmin_UnknownUser(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	mw := newTestMiddleware(new(mockservice.TokenService), userRepo)

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{UserID: userID.Hex()}, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error in admin middleware")
}

func TestIsAdmin_MissingIDClaim(t *testing.T) {
	mw := newTestMiddleware(new(mockservice.TokenService), new(mockrepo.UserRepository))

	nextCalled := false
	rec := adminInvoke(t, mw, &service.Claims{}, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error in admin middleware")
}

func TestIsAdmin_NoIdentity(t *testing.T) {
	mw := newTestMiddleware(new(mockservice.TokenService), new(mockrepo.UserRepository))

	nextCalled := false
	rec := adminInvoke(t, mw, nil, &nextCalled)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error in admin middleware")
}
