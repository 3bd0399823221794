// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// minPasswordLength applies to profile updates only; registration accepts
// any non-empty password, as the legacy client expects.
const minPasswordLength = 6

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Answer   string `json:"answer"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email       string `json:"email"`
	Answer      string `json:"answer"`
	NewPassword string `json:"newPassword"`
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register handles the account registration request. Field checks run in a
// fixed order and each missing field has its own contracted message.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error in registration", err)
	}

	switch {
	case req.Name == "":
		return response.Fail(c, http.StatusBadRequest, "Name is required")
	case req.Email == "":
		return response.Fail(c, http.StatusBadRequest, "Email is required")
	case req.Password == "":
		return response.Fail(c, http.StatusBadRequest, "Password is required")
	case req.Phone == "":
		return response.Fail(c, http.StatusBadRequest, "Phone number is required")
	case req.Address == "":
		return response.Fail(c, http.StatusBadRequest, "Address is required")
	case req.Answer == "":
		return response.Fail(c, http.StatusBadRequest, "Answer is required")
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Answer:   req.Answer,
	})
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in registration")
	}

	return response.Success(c, http.StatusCreated, "User registered successfully", echo.Map{
		"user": user,
	})
}

// Login handles the login request. A missing field short-circuits with the
// same vague line for both, while the lookup itself stays specific.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error in login", err)
	}

	if req.Email == "" || req.Password == "" {
		return response.Fail(c, http.StatusNotFound, "Invalid email or password")
	}

	output, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in login")
	}

	return response.Success(c, http.StatusOK, "Login successfully", echo.Map{
		"user":  output.User,
		"token": output.Token,
	})
}

// ForgotPassword handles the secret-question password reset.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Something went wrong", err)
	}

	switch {
	case req.Email == "":
		return response.Fail(c, http.StatusBadRequest, "Email is required")
	case req.Answer == "":
		return response.Fail(c, http.StatusBadRequest, "Answer is required")
	case req.NewPassword == "":
		return response.Fail(c, http.StatusBadRequest, "New password is required")
	}

	err := h.uc.ResetPassword(c.Request().Context(), req.Email, req.Answer, req.NewPassword)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Something went wrong")
	}

	return response.Success(c, http.StatusOK, "Password reset successfully", nil)
}

// UpdateProfile applies profile changes for the signed-in account.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusBadRequest, "Error while updating profile", err)
	}

	// The misspelled message is contracted; the client matches on it.
	if req.Password != "" && len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Passsword is required and is 6 characters long",
		})
	}

	userID, err := callerID(c)
	if err != nil {
		return response.FailWithErr(c, http.StatusBadRequest, "Error while updating profile", err)
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), userID, &entity.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return response.FromError(c, err, http.StatusBadRequest, "Error while updating profile")
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", echo.Map{
		"updatedUser": updated,
	})
}

// Test answers the protected-route probe with a plain string body.
func (h *AuthHandler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "Protected Routes")
}

// UserAuth confirms a valid sign-in to the client-side route guard.
func (h *AuthHandler) UserAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// AdminAuth confirms admin access to the client-side route guard.
func (h *AuthHandler) AdminAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// callerID extracts the signed-in account id planted by the sign-in gate.
func callerID(c echo.Context) (primitive.ObjectID, error) {
	claims := middleware.IdentityFrom(c)

	var rawID string
	if claims != nil {
		rawID = claims.UserID
	}

	return primitive.ObjectIDFromHex(rawID)
}
