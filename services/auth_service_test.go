package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewMemoryUserRepository())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newAuthService(t)

	user, err := s.Register("alice1", "alice@example.com", "s3cretpass", models.UserRoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cretpass", user.Password, "password must be stored hashed")

	got, err := s.Login("alice1", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, s.HasActiveSession(user.ID))

	s.Logout(user.ID)
	assert.False(t, s.HasActiveSession(user.ID))
}

func TestRegisterValidation(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register("ab", "a@b.com", "longenough", models.UserRoleStaff)
	assert.True(t, apperr.IsInvalidArgument(err), "short username")

	_, err = s.Register("bobby", "not-an-email", "longenough", models.UserRoleStaff)
	assert.True(t, apperr.IsInvalidArgument(err), "bad email")

	_, err = s.Register("bobby", "bob@example.com", "short", models.UserRoleStaff)
	assert.True(t, apperr.IsInvalidArgument(err), "short password")

	_, err = s.Register("bobby", "bob@example.com", "longenough", models.UserRole("WIZARD"))
	assert.True(t, apperr.IsInvalidArgument(err), "bad role")
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	s := newAuthService(t)
	_, err := s.Register("carol7", "carol@example.com", "longenough", models.UserRoleManager)
	require.NoError(t, err)

	_, err = s.Register("carol7", "other@example.com", "longenough", models.UserRoleStaff)
	assert.True(t, apperr.IsConflict(err), "duplicate username")

	_, err = s.Register("carol8", "carol@example.com", "longenough", models.UserRoleStaff)
	assert.True(t, apperr.IsConflict(err), "duplicate email")
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	s := newAuthService(t)
	_, err := s.Register("dave99", "dave@example.com", "rightpassword", models.UserRoleStaff)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = s.Login("dave99", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Locked now, even with the right password.
	_, err = s.Login("dave99", "rightpassword")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLoginResetsFailureCountOnSuccess(t *testing.T) {
	s := newAuthService(t)
	_, err := s.Register("erin42", "erin@example.com", "rightpassword", models.UserRoleStaff)
	require.NoError(t, err)

	_, err = s.Login("erin42", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login("erin42", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("erin42", "rightpassword")
	require.NoError(t, err)

	// Counter is back to zero; two more misses do not lock.
	_, err = s.Login("erin42", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login("erin42", "rightpassword")
	require.NoError(t, err)
}

func TestLoginUnknownUser(t *testing.T) {
	s := newAuthService(t)
	_, err := s.Login("nobody", "whatever")
	assert.True(t, apperr.IsNotFound(err))
}
