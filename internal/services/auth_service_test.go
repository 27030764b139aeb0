package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicoach/internal/apperrors"
	"aicoach/internal/repository"
)

func newAuth(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)))
}

func TestRegisterThenLoginReturnsSameUser(t *testing.T) {
	auth := newAuth(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.NotZero(t, registered.ID)

	loggedIn, err := auth.Login(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, loggedIn)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestLoginTrimsEmail(t *testing.T) {
	auth := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "trim@example.com", "secret1")
	require.NoError(t, err)

	user, err := auth.Login(ctx, "  trim@example.com  ", "secret1")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLoginWrongPasswordIsNoMatchNotError(t *testing.T) {
	auth := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "known@example.com", "correct1")
	require.NoError(t, err)

	user, err := auth.Login(ctx, "known@example.com", "wrong999")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginUnknownEmailIsNoMatch(t *testing.T) {
	auth := newAuth(t)

	user, err := auth.Login(context.Background(), "ghost@example.com", "whatever")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginValidatesBeforeStorage(t *testing.T) {
	auth := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "not-an-email", "secret1")
	assert.True(t, apperrors.IsValidation(err))

	_, err = auth.Login(ctx, "ok@example.com", "abc")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterDuplicateEmailFailsWithValidation(t *testing.T) {
	auth := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "dup@example.com", "secret1")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "dup@example.com", "another1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
