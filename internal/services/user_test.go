package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var jwtKey = []byte("test-key")

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:   "jperez",
		Password:   "secreto1",
		Department: models.DepartmentTecnico,
		Nombre:     "Juan",
		Apellido:   "Perez",
		Email:      "juan@example.com",
	}
}

func TestUserService_Register(t *testing.T) {

	t.Run("Success - User Registration", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("GetUserByEmail", ctx, req.Email).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, req.Username, user.Username)
		assert.Equal(t, req.Department, user.Department)
		assert.NotEqual(t, req.Password, user.Password)

		// Verify that password was hashed by bcrypt
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)))
	})

	t.Run("Failure - Duplicate Username", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(&models.User{ID: uuid.New()}, nil).Once()

		user, err := svc.Register(ctx, req)

		assert.Nil(t, user)
		assertAppCode(t, err, appErrors.ErrCodeDuplicateEntry)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("GetUserByEmail", ctx, req.Email).Return(&models.User{ID: uuid.New()}, nil).Once()

		user, err := svc.Register(ctx, req)

		assert.Nil(t, user)
		assertAppCode(t, err, appErrors.ErrCodeDuplicateEntry)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Lookup error is not taken as free", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, errors.New("connection refused")).Once()

		user, err := svc.Register(ctx, req)

		assert.Nil(t, user)
		assertAppCode(t, err, appErrors.ErrCodeDatabaseError)
		userRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Email lookup error", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("GetUserByEmail", ctx, req.Email).Return(nil, errors.New("timeout")).Once()

		_, err := svc.Register(ctx, req)

		assertAppCode(t, err, appErrors.ErrCodeDatabaseError)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unique constraint on insert", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("GetUserByEmail", ctx, req.Email).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicate).Once()

		_, err := svc.Register(ctx, req)

		assertAppCode(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
		ctx := context.Background()
		req := registerRequest()

		userRepo.On("GetUserByUsername", ctx, req.Username).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("GetUserByEmail", ctx, req.Email).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(errors.New("something exploded")).Once()

		_, err := svc.Register(ctx, req)

		assertAppCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:         uuid.New(),
		Username:   "jperez",
		Password:   string(hashed),
		Department: models.DepartmentAdmin,
		Nombre:     "Juan",
		Apellido:   "Perez",
		Email:      "juan@example.com",
	}
}

func TestUserService_Login(t *testing.T) {

	t.Run("Success - Valid Credentials", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, limiter, jwtKey, 2*time.Hour)
		ctx := context.Background()
		user := storedUser(t, "secreto1")

		limiter.On("CheckLoginRateLimit", ctx, "jperez").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByUsername", ctx, "jperez").Return(user, nil).Once()
		limiter.On("ResetLoginAttempts", ctx, "jperez").Return(nil).Once()

		resp, err := svc.Login(ctx, &models.LoginRequest{Username: "jperez", Password: "secreto1"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, models.DepartmentAdmin, resp.Department)
		assert.Equal(t, "juan@example.com", resp.Email)
		assert.Equal(t, 7200, resp.ExpiresIn)

		token, err := jwt.ParseWithClaims(resp.Token, &models.Claims{}, func(*jwt.Token) (any, error) {
			return jwtKey, nil
		})
		require.NoError(t, err)
		claims, ok := token.Claims.(*models.Claims)
		require.True(t, ok)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("Failure - Wrong password", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, limiter, jwtKey, time.Hour)
		ctx := context.Background()

		limiter.On("CheckLoginRateLimit", ctx, "jperez").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByUsername", ctx, "jperez").Return(storedUser(t, "secreto1"), nil).Once()

		_, err := svc.Login(ctx, &models.LoginRequest{Username: "jperez", Password: "otra"})

		assertAppCode(t, err, appErrors.ErrCodeUnauthorized)
		assert.Equal(t, "Invalid username or password", err.Error())
		limiter.AssertNotCalled(t, "ResetLoginAttempts", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, limiter, jwtKey, time.Hour)
		ctx := context.Background()

		limiter.On("CheckLoginRateLimit", ctx, "nadie").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByUsername", ctx, "nadie").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Login(ctx, &models.LoginRequest{Username: "nadie", Password: "otra"})

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
		limiter.AssertNotCalled(t, "ResetLoginAttempts", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate limited", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, limiter, jwtKey, time.Hour)
		ctx := context.Background()

		limiter.On("CheckLoginRateLimit", ctx, "jperez").Return(false, 0, 12, nil).Once()

		_, err := svc.Login(ctx, &models.LoginRequest{Username: "jperez", Password: "secreto1"})

		assertAppCode(t, err, appErrors.ErrCodeTooManyRequests)
		userRepo.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate limiter down", func(t *testing.T) {
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(mocks.NewUserRepository(t), limiter, jwtKey, time.Hour)
		ctx := context.Background()

		limiter.On("CheckLoginRateLimit", ctx, "jperez").Return(false, 0, 0, errors.New("redis down")).Once()

		_, err := svc.Login(ctx, &models.LoginRequest{Username: "jperez", Password: "secreto1"})

		assertAppCode(t, err, appErrors.ErrCodeThirdPartyError)
	})
}

func TestUserService_ValidateToken(t *testing.T) {

	login := func(t *testing.T, userRepo *mocks.UserRepository, user *models.User, ttl time.Duration) (service.UserService, string) {
		limiter := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, limiter, jwtKey, ttl)

		limiter.On("CheckLoginRateLimit", mock.Anything, user.Username).Return(true, 4, 0, nil).Once()
		limiter.On("ResetLoginAttempts", mock.Anything, user.Username).Return(nil).Once()
		userRepo.On("GetUserByUsername", mock.Anything, user.Username).Return(user, nil).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: user.Username, Password: "secreto1"})
		require.NoError(t, err)

		return svc, resp.Token
	}

	t.Run("Success - Issued token validates", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		user := storedUser(t, "secreto1")
		svc, token := login(t, userRepo, user, time.Hour)

		userRepo.On("GetUserById", mock.Anything, user.ID).Return(user, nil).Once()

		claims, got, err := svc.ValidateToken(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user, got)
	})

	t.Run("Failure - Deleted user", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		user := storedUser(t, "secreto1")
		svc, token := login(t, userRepo, user, time.Hour)

		userRepo.On("GetUserById", mock.Anything, user.ID).Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.ValidateToken(context.Background(), token)

		assertAppCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Wrong signature", func(t *testing.T) {
		claims := &models.Claims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
		require.NoError(t, err)

		svc := service.NewUserService(mocks.NewUserRepository(t), mocks.NewRateLimitRepository(t), jwtKey, time.Hour)

		_, _, err = svc.ValidateToken(context.Background(), token)

		assertAppCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Expired", func(t *testing.T) {
		claims := &models.Claims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
		require.NoError(t, err)

		svc := service.NewUserService(mocks.NewUserRepository(t), mocks.NewRateLimitRepository(t), jwtKey, time.Hour)

		_, _, err = svc.ValidateToken(context.Background(), token)

		assertAppCode(t, err, appErrors.ErrCodeUnauthorized)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)
	svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)
	id := uuid.New()

	userRepo.On("GetUserById", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.GetUserByID(context.Background(), id)

	assertAppCode(t, err, appErrors.ErrCodeNotFound)
}
