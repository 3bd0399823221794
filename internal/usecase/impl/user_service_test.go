package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockrepo "storefront/internal/mocks/repository"
	mockservice "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUserService(userRepo *mockrepo.UserRepository, hasher *mockservice.CredentialHasher, tokenSvc *mockservice.TokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
}

func sheenInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Sheen",
		Email:    "sheen@example.com",
		Password: "P@ssword123",
		Phone:    "91234567",
		Address:  "21 Lower Kent Ridge Rd",
		Answer:   "badminton",
	}
}

func TestUserService_Register(t *testing.T) {
	input := sheenInput()

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == input.Email && u.Password == "hashed" && u.Role == entity.RoleUser
	})).Return(nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Hash", input.Password).Return("hashed")

	svc := newTestUserService(userRepo, hasher, new(mockservice.TokenService))

	user, err := svc.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "Sheen", user.Name)
	assert.Equal(t, entity.RoleUser, user.Role)
	userRepo.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	input := sheenInput()

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, input.Email).
		Return(&entity.User{Email: input.Email}, nil)

	svc := newTestUserService(userRepo, new(mockservice.CredentialHasher), new(mockservice.TokenService))

	user, err := svc.Register(context.Background(), input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	stored := &entity.User{
		ID:       primitive.NewObjectID(),
		Email:    "sheen@example.com",
		Password: "hashed",
	}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Compare", "P@ssword123", "hashed").Return(true, nil)

	tokenSvc := new(mockservice.TokenService)
	tokenSvc.On("Issue", stored.ID.Hex()).Return("signed-token", nil)

	svc := newTestUserService(userRepo, hasher, tokenSvc)

	output, err := svc.Login(context.Background(), stored.Email, "P@ssword123")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, stored, output.User)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	svc := newTestUserService(userRepo, new(mockservice.CredentialHasher), new(mockservice.TokenService))

	output, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	stored := &entity.User{ID: primitive.NewObjectID(), Email: "sheen@example.com", Password: "hashed"}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Compare", "wrong", "hashed").Return(false, nil)

	tokenSvc := new(mockservice.TokenService)

	svc := newTestUserService(userRepo, hasher, tokenSvc)

	output, err := svc.Login(context.Background(), stored.Email, "wrong")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	tokenSvc.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_LoginCompareFailurePropagates(t *testing.T) {
	stored := &entity.User{ID: primitive.NewObjectID(), Email: "sheen@example.com", Password: "not-a-hash"}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Compare", "P@ssword123", "not-a-hash").Return(false, errors.New("hash is malformed"))

	svc := newTestUserService(userRepo, hasher, new(mockservice.TokenService))

	output, err := svc.Login(context.Background(), stored.Email, "P@ssword123")
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestUserService_ResetPassword(t *testing.T) {
	stored := &entity.User{ID: primitive.NewObjectID(), Email: "sheen@example.com"}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmailAndAnswer", mock.Anything, stored.Email, "badminton").Return(stored, nil)
	userRepo.On("UpdatePassword", mock.Anything, stored.ID, "new-hash").Return(nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Hash", "NewP@ss123").Return("new-hash")

	svc := newTestUserService(userRepo, hasher, new(mockservice.TokenService))

	err := svc.ResetPassword(context.Background(), stored.Email, "badminton", "NewP@ss123")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserService_ResetPasswordWrongPair(t *testing.T) {
	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindByEmailAndAnswer", mock.Anything, "sheen@example.com", "tennis").
		Return(nil, repository.ErrUserNotFound)

	svc := newTestUserService(userRepo, new(mockservice.CredentialHasher), new(mockservice.TokenService))

	err := svc.ResetPassword(context.Background(), "sheen@example.com", "tennis", "NewP@ss123")
	assert.ErrorIs(t, err, domainerrors.ErrWrongEmailOrAnswer)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfileHashesNewPassword(t *testing.T) {
	userID := primitive.NewObjectID()
	updated := &entity.User{ID: userID, Name: "Sheen M"}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(u *entity.ProfileUpdate) bool {
		return u.Name == "Sheen M" && u.Password == "new-hash"
	})).Return(updated, nil)

	hasher := new(mockservice.CredentialHasher)
	hasher.On("Hash", "NewP@ss123").Return("new-hash")

	svc := newTestUserService(userRepo, hasher, new(mockservice.TokenService))

	user, err := svc.UpdateProfile(context.Background(), userID, &entity.ProfileUpdate{
		Name:     "Sheen M",
		Password: "NewP@ss123",
	})
	assert.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestUserService_UpdateProfileKeepsStoredPassword(t *testing.T) {
	userID := primitive.NewObjectID()

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(u *entity.ProfileUpdate) bool {
		return u.Password == ""
	})).Return(&entity.User{ID: userID}, nil)

	hasher := new(mockservice.CredentialHasher)

	svc := newTestUserService(userRepo, hasher, new(mockservice.TokenService))

	_, err := svc.UpdateProfile(context.Background(), userID, &entity.ProfileUpdate{Phone: "98765432"})
	assert.NoError(t, err)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_ListUsers(t *testing.T) {
	users := []*entity.User{{Name: "Sheen"}, {Name: "Admin"}}

	userRepo := new(mockrepo.UserRepository)
	userRepo.On("FindAll", mock.Anything).Return(users, nil)

	svc := newTestUserService(userRepo, new(mockservice.CredentialHasher), new(mockservice.TokenService))

	got, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}
