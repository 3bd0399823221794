// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserUsecase is a mock implementation of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *UserUsecase) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	args := m.Called(ctx, email, answer, newPassword)

	return args.Error(0)
}

func (m *UserUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update *entity.ProfileUpdate) (*entity.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}
