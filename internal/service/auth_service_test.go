package service

import (
	"testing"
	"time"

	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // min cost keeps the test fast
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newTestAuthService()

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, svc.CheckPassword(hash, "s3cret"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestStaffTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	staff := &model.StaffUser{ID: 7, Name: "Dana", Username: "dana", Role: model.RoleSupervisor}
	token, err := svc.GenerateStaffToken(staff)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, string(model.RoleSupervisor), claims.Role)
	assert.Equal(t, model.PermissionsForRole(model.RoleSupervisor), claims.Permissions)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService()

	staff := &model.StaffUser{ID: 1, Role: model.RoleCaseworker}
	token, err := svc.GenerateStaffToken(staff)
	require.NoError(t, err)

	other := NewAuthService(&config.Config{JWTSecret: "different-secret", JWTExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	svc := NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: -time.Minute,
	})

	token, err := svc.GenerateStaffToken(&model.StaffUser{ID: 1, Role: model.RoleCaseworker})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
