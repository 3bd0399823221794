package auth

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4, newDiscardLogger()) // Low cost for faster testing

	passwords := []string{
		"P@ssword123",
		"",
		"P@$$wörd!黄循\n\t",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	for _, password := range passwords {
		hash := hasher.Hash(password)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, password, hash)

		ok, err := hasher.Compare(password, hash)
		assert.NoError(t, err)
		assert.True(t, ok, "expected round trip to verify for %q", password)
	}
}

func TestBcryptHasher_CompareMismatch(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4, newDiscardLogger())

	hash := hasher.Hash("P@ssword123")

	// A plain mismatch is not an error.
	ok, err := hasher.Compare("WrongPassword", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Compare("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CompareMalformedHashPropagates(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4, newDiscardLogger())

	// Compare propagates primitive failures, unlike Hash.
	ok, err := hasher.Compare("P@ssword123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashSwallowsPrimitiveErrors(t *testing.T) {
	// Cost above bcrypt's maximum makes the primitive fail; Hash logs the
	// failure and yields "" instead of surfacing it.
	hasher := NewBcryptHasherWithCost(99, newDiscardLogger())

	hash := hasher.Hash("P@ssword123")
	assert.Empty(t, hash)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4, newDiscardLogger())

	first := hasher.Hash("P@ssword123")
	second := hasher.Hash("P@ssword123")
	assert.NotEqual(t, first, second)

	ok, err := hasher.Compare("P@ssword123", first)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare("P@ssword123", second)
	assert.NoError(t, err)
	assert.True(t, ok)
}
