package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("Success: Should register a valid user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		ctx := context.Background()

		input := services.RegisterInput{
			Email:    "test_success@lifesync.app",
			Password: "StrongPassword123!",
			Name:     "Test",
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := service.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Should return error for invalid email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)

		user, err := service.Register(context.Background(), services.RegisterInput{Email: "not-an-email", Password: "password123", Name: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return error for short password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)

		user, err := service.Register(context.Background(), services.RegisterInput{Email: "valid@email.com", Password: "short", Name: "x"})

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should propagate duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		user, err := service.Register(ctx, services.RegisterInput{Email: "duplicate@email.com", Password: "StrongPassword123!", Name: "Dup"})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	stored, err := domain.NewUser("u1", "ada@lifesync.app", "Ada")
	require.NoError(t, err)
	require.NoError(t, stored.SetPassword("correct-horse"))

	t.Run("Success: normalises the email and checks the password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "ada@lifesync.app").Return(stored, nil)

		user, err := service.Login(ctx, services.LoginInput{Email: "  Ada@LifeSync.app ", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, domain.ID("u1"), user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "ada@lifesync.app").Return(stored, nil)

		_, err := service.Login(ctx, services.LoginInput{Email: "ada@lifesync.app", Password: "nope-nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Fail: unknown email looks like bad credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "ghost@lifesync.app").Return(nil, domain.ErrUserNotFound)

		_, err := service.Login(ctx, services.LoginInput{Email: "ghost@lifesync.app", Password: "whatever1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		mockRepo.On("GetByID", ctx, domain.ID("u1")).Return(&domain.User{ID: "u1", Email: "me@lifesync.app"}, nil)

		user, err := service.Profile(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "me@lifesync.app", user.Email)
	})

	t.Run("Unknown user keeps the sentinel", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo)
		mockRepo.On("GetByID", ctx, domain.ID("gone")).Return(nil, domain.ErrUserNotFound)

		_, err := service.Profile(ctx, "gone")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
