package service

import (
	"github.com/stretchr/testify/mock"
)

// CredentialHasher is a mock implementation of service.CredentialHasher.
type CredentialHasher struct {
	mock.Mock
}

func (m *CredentialHasher) Hash(password string) string {
	args := m.Called(password)

	return args.String(0)
}

func (m *CredentialHasher) Compare(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}
