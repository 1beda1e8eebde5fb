package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var jwtKey = []byte("test-key")

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - User Registration", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mocks.UserRepository)
		userService := service.NewUserService(mockUserRepo, new(mocks.RateLimitRepository), jwtKey, time.Hour)
		req := &models.RegisterRequest{Name: " Admin ", Email: "Admin@Example.com", Password: "P@ssword123!"}

		mockUserRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

		// Act
		user, err := userService.Register(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Admin", user.Name)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		userService := service.NewUserService(mockUserRepo, new(mocks.RateLimitRepository), jwtKey, time.Hour)

		mockUserRepo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail).Once()

		user, err := userService.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})

		assert.Nil(t, user)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeConflict))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		userService := service.NewUserService(mockUserRepo, new(mocks.RateLimitRepository), jwtKey, time.Hour)

		mockUserRepo.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := userService.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	password := "P@ssword123!"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{ID: uuid.New(), Email: "admin@example.com", Name: "Admin", Password: string(hashed)}

	t.Run("Success - Token issued", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := service.NewUserService(mockUserRepo, mockLimiter, jwtKey, 2*time.Hour)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "admin@example.com").
			Return(&repository.RateLimitResult{Allowed: true, Remaining: 4}, nil).Once()
		mockUserRepo.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(stored, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "ADMIN@example.com", Password: password})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 7200, resp.ExpiresIn)

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) { return jwtKey, nil })
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, stored.ID, claims.UserID)
		assert.Equal(t, stored.Email, claims.Email)

		mockUserRepo.AssertExpectations(t)
		mockLimiter.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := service.NewUserService(mockUserRepo, mockLimiter, jwtKey, time.Hour)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "admin@example.com").
			Return(&repository.RateLimitResult{Allowed: true, Remaining: 2}, nil).Once()
		mockUserRepo.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(stored, nil).Once()

		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "wrong"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
		assert.Equal(t, 2, resp.RemainingTries)
	})

	t.Run("Failure - Unknown Email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := service.NewUserService(mockUserRepo, mockLimiter, jwtKey, time.Hour)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "ghost@example.com").
			Return(&repository.RateLimitResult{Allowed: true, Remaining: 3}, nil).Once()
		mockUserRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: password})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := service.NewUserService(mockUserRepo, mockLimiter, jwtKey, time.Hour)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "admin@example.com").
			Return(&repository.RateLimitResult{Allowed: false, RetryAfter: 30 * time.Second}, nil).Once()

		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: password})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 30, resp.RetryAfter)
		mockUserRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate Limiter Unavailable", func(t *testing.T) {
		mockLimiter := new(mocks.RateLimitRepository)
		userService := service.NewUserService(new(mocks.UserRepository), mockLimiter, jwtKey, time.Hour)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "admin@example.com").Return(nil, errors.New("redis down")).Once()

		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: password})

		assert.Nil(t, resp)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeThirdPartyError))
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		userService := service.NewUserService(mockUserRepo, new(mocks.RateLimitRepository), jwtKey, time.Hour)
		mockUserRepo.On("GetUserByID", mock.Anything, id).Return(&models.User{ID: id, Name: "Admin"}, nil).Once()

		user, err := userService.GetUserByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Admin", user.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		userService := service.NewUserService(mockUserRepo, new(mocks.RateLimitRepository), jwtKey, time.Hour)
		mockUserRepo.On("GetUserByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		_, err := userService.GetUserByID(ctx, id)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}
