package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/gravora/metrics-api/infrastructure/repository/mocks"
	"github.com/gravora/metrics-api/internal/config"
	"github.com/gravora/metrics-api/internal/domain"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(userRepo, cfg), userRepo
}

func hashedUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &domain.User{
		ID:           7,
		Name:         "Aigerim",
		Email:        "aigerim@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       3,
	}
}

func TestCreateUserDefaultsRoleAndActivates(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
		func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, 3, user.RoleID)
			assert.True(t, user.Active)
			// a senha nunca é persistida em claro
			assert.NotEqual(t, "Str0ng!Pass", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!Pass")))
			user.ID = 7
			return user, nil
		})

	created, err := service.CreateUser(&domain.User{
		Name:         "Aigerim",
		Email:        " Aigerim@Example.com ",
		PasswordHash: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "aigerim@example.com", created.Email)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(hashedUser("Str0ng!Pass"), nil)

	created, err := service.CreateUser(&domain.User{
		Name:         "Aigerim",
		Email:        "aigerim@example.com",
		PasswordHash: "Str0ng!Pass",
	})
	assert.Nil(t, created)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUserRejectsWeakPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(nil, nil)

	created, err := service.CreateUser(&domain.User{
		Name:         "Aigerim",
		Email:        "aigerim@example.com",
		PasswordHash: "fraca",
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginUserReturnsValidToken(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(hashedUser("Str0ng!Pass"), nil)

	token, err := service.LoginUser("Aigerim@Example.com", "Str0ng!Pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 3, claims.UserRoleID)
	assert.Equal(t, "aigerim@example.com", claims.UserEmail)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(hashedUser("Str0ng!Pass"), nil)

	token, err := service.LoginUser("aigerim@example.com", "errada")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabledAccount(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := hashedUser("Str0ng!Pass")
	user.Active = false
	userRepo.EXPECT().GetUserByEmail("aigerim@example.com").Return(user, nil)

	token, err := service.LoginUser("aigerim@example.com", "Str0ng!Pass")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service, _ := newAuthService(t)

	claims, err := service.ValidateToken("nao-e-um-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(7).Return(hashedUser("Str0ng!Pass"), nil)

	err := service.ChangePassword(7, "errada", "Outr4!Senha")
	require.Error(t, err)
	assert.Equal(t, "senha atual incorreta", err.Error())
}

func TestChangePasswordPersistsNewHash(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(7).Return(hashedUser("Str0ng!Pass"), nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(
		func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Outr4!Senha")))
			return nil
		})

	err := service.ChangePassword(7, "Str0ng!Pass", "Outr4!Senha")
	assert.NoError(t, err)
}
