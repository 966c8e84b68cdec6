// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"skillscape/internal/config"
	"skillscape/internal/model"
	"skillscape/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryMinutes = 60
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()

	req := &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	t.Run("正常系: 登録成功でウェルカムメール送信", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		mailer := &LogMailer{}
		svc := NewAuthService(db, userRepo, mailer, testAuthConfig())

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*model.User)
				assert.Equal(t, req.Name, user.Name)
				assert.Equal(t, req.Email, user.Email)
				assert.True(t, user.IsActive)
				// 平文のまま保存していないこと
				assert.NotEqual(t, req.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			}).Return(nil).Once()

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, uuid.Nil, user.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("異常系: メールアドレス重複", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, userRepo, &LogMailer{}, testAuthConfig())

		existing := &model.User{UserID: uuid.New(), Email: req.Email}
		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(existing, nil).Once()

		user, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	cfg := testAuthConfig()

	password := "password123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &model.User{
		UserID:       uuid.New(),
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	t.Run("正常系: ログイン成功でJWT発行", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, userRepo, &LogMailer{}, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), user.Email).
			Return(user, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: password})

		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		// subjectにユーザーIDが入っていること
		token, err := jwt.ParseWithClaims(resp.AccessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(*jwt.RegisteredClaims)
		assert.Equal(t, user.UserID.String(), claims.Subject)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, userRepo, &LogMailer{}, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), user.Email).
			Return(user, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: "wrong-password"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, resp)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, userRepo, &LogMailer{}, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: password})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, resp)
	})

	t.Run("異常系: 無効化されたアカウント", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, userRepo, &LogMailer{}, cfg)

		inactive := &model.User{
			UserID:       uuid.New(),
			Email:        "bob@example.com",
			PasswordHash: string(hashed),
			IsActive:     false,
		}
		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), inactive.Email).
			Return(inactive, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: inactive.Email, Password: password})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
	})
}
