package user

import (
	"context"
	"testing"

	"emenu/domain"
	"emenu/entities"
	"emenu/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", registered.Email)
	assert.True(t, registered.IsActive)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "dup@example.com",
		Password: "testpass123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "dup@example.com",
		Password: "otherpass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_ReturnsToken(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, registered.ID, res.User.ID)
}

func TestLogin_InactiveUser(t *testing.T) {
	service, db := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "inactive@example.com",
		Password: "testpass123",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&entities.User{}).
		Where("email = ?", "inactive@example.com").
		Update("is_active", false).Error)

	_, err = service.Login(context.Background(), domain.LoginUserRequest{
		Email:    "inactive@example.com",
		Password: "testpass123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotActive)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginUserRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), domain.LoginUserRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "me@example.com",
		Password: "testpass123",
		Name:     "Me",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", me.Email)
	assert.Equal(t, "Me", me.Name)
}

func TestMe_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Me(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
