package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "test_secret",
			TokenTTLHours: 1,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())
	ctx := context.Background()

	partnerID := "prt_1"
	activeUser := &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "Senha123"),
		Active:       true,
		RoleID:       domain.RolePartner,
		PartnerID:    &partnerID,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login com sucesso normaliza o email",
			email:    "  Ana@Example.com ",
			password: "Senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, domain.RolePartner, claims.UserRoleID)
				require.NotNil(t, claims.UserPartnerID)
				assert.Equal(t, "prt_1", *claims.UserPartnerID)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@example.com",
			password: "errada",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Usuário desativado",
			email:    "ana@example.com",
			password: "Senha123",
			setup: func() {
				disabled := *activeUser
				disabled.Active = false
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&disabled, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "nobody@example.com",
			password: "Senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "Campos obrigatórios",
			email:    "",
			password: "",
			setup:    func() {},
			validate: func(t *testing.T, token string, err error) {
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
			},
		},
		{
			name:     "Falha no banco de dados",
			email:    "ana@example.com",
			password: "Senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			token, err := service.LoginUser(ctx, tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, newTestConfig())

	t.Run("Token expirado", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1}, "test_secret", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1}, "outro_segredo", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Algoritmo não HMAC", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())
	ctx := context.Background()

	t.Run("Cria cliente com senha em hash", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "joao@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
			assert.Equal(t, domain.RoleClient, user.RoleID)
			assert.True(t, user.Active)
			user.ID = 10
			return user, nil
		})

		user, err := service.CreateUser(ctx, &domain.User{
			Name:         "João",
			Lastname:     "Lima",
			Email:        "Joao@Example.com",
			PasswordHash: "Senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "joao@example.com").Return(&domain.User{ID: 10}, nil)

		_, err := service.CreateUser(ctx, &domain.User{
			Name:         "João",
			Lastname:     "Lima",
			Email:        "joao@example.com",
			PasswordHash: "Senha123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Parceiro sem partner_id", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{
			Name:         "Paula",
			Lastname:     "Reis",
			Email:        "paula@example.com",
			PasswordHash: "Senha123",
			RoleID:       domain.RolePartner,
		})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Perfil inexistente", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{
			Name:         "Paula",
			Lastname:     "Reis",
			Email:        "paula@example.com",
			PasswordHash: "Senha123",
			RoleID:       9,
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Senha fraca", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{
			Name:         "Paula",
			Lastname:     "Reis",
			Email:        "paula@example.com",
			PasswordHash: "senha",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())
	ctx := context.Background()

	mockUserRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: "hash"}, nil)
	user, err := service.GetUserProfile(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	mockUserRepo.EXPECT().GetUserByID(ctx, 2).Return(nil, nil)
	_, err = service.GetUserProfile(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("Senha123"))
	assert.Error(t, ValidatePasswordStrength("Ab1"))
	assert.Error(t, ValidatePasswordStrength("senha1234"))
	assert.Error(t, ValidatePasswordStrength("SENHA1234"))
	assert.Error(t, ValidatePasswordStrength("SenhaForte"))
}
