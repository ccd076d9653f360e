package services

import (
	"testing"

	"recipe-api/models"
	"recipe-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db)), db
}

func TestRegisterHashesPassword(t *testing.T) {
	service, _ := newTestAuthService(t)

	user, err := service.Register(models.CreateUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test Name",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "testpass123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpass123")))
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, db := newTestAuthService(t)

	req := models.CreateUserRequest{Email: "test@example.com", Password: "testpass123"}
	_, err := service.Register(req)
	require.NoError(t, err)

	_, err = service.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginIssuesToken(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Register(models.CreateUserRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)

	token, err := service.Login(models.TokenRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginBadCredentials(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Register(models.CreateUserRequest{Email: "test@example.com", Password: "goodpass"})
	require.NoError(t, err)

	_, err = service.Login(models.TokenRequest{Email: "test@example.com", Password: "badpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(models.TokenRequest{Email: "missing@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	service, _ := newTestAuthService(t)

	user, err := service.Register(models.CreateUserRequest{Email: "test@example.com", Password: "testpass123", Name: "Old Name"})
	require.NoError(t, err)

	newName := "Updated Name"
	newPassword := "newpassword123"
	updated, err := service.UpdateProfile(user.ID, models.UpdateProfileRequest{Name: &newName, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)

	_, err = service.Login(models.TokenRequest{Email: "test@example.com", Password: "newpassword123"})
	assert.NoError(t, err)

	_, err = service.Login(models.TokenRequest{Email: "test@example.com", Password: "testpass123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
