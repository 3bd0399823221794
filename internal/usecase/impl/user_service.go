// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.CredentialHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.CredentialHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new shopper account. The duplicate check runs first so
// re-registering an existing email never touches the stored record.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}
	if existing != nil {
		srv.log(ctx).Info("Rejected duplicate registration", slog.String("email", input.Email))

		return nil, domainerrors.ErrAlreadyRegistered
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: srv.hasher.Hash(input.Password),
		Phone:    input.Phone,
		Address:  input.Address,
		Answer:   input.Answer,
		Role:     entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("Registered user", slog.String("userId", user.ID.Hex()))

	return user, nil
}

// Login authenticates the credentials and mints a bearer token. An unknown
// email and a wrong password surface as distinct errors; the handler keeps
// them distinct on the wire.
func (srv *userService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrEmailNotRegistered
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	match, err := srv.hasher.Compare(password, user.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !match {
		srv.log(ctx).Warn("Rejected login with wrong password", slog.String("userId", user.ID.Hex()))

		return nil, domainerrors.ErrInvalidPassword
	}

	token, err := srv.tokenService.Issue(user.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ResetPassword replaces the password of the account matching both the email
// and the secret-question answer. A miss on either field is reported as one
// combined failure.
func (srv *userService) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	user, err := srv.userRepo.FindByEmailAndAnswer(ctx, email, answer)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrWrongEmailOrAnswer
		}

		return errors.Wrap(err, "failed to look up account for reset")
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, srv.hasher.Hash(newPassword)); err != nil {
		srv.log(ctx).Error("Failed to reset password", slog.String("userId", user.ID.Hex()), slog.Any("error", err))

		return errors.Wrap(err, "failed to reset password")
	}

	return nil
}

// UpdateProfile applies the provided fields to the account. A new password
// is hashed here; empty fields keep their stored values.
func (srv *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update *entity.ProfileUpdate) (*entity.User, error) {
	applied := *update
	if applied.Password != "" {
		applied.Password = srv.hasher.Hash(applied.Password)
	}

	user, err := srv.userRepo.UpdateProfile(ctx, userID, &applied)
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.String("userId", userID.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
