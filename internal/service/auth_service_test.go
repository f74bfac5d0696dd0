package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type mockProfileRepo struct {
	profile *models.Profile
	err     error
}

func (m *mockProfileRepo) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil {
		return nil, sql.ErrNoRows
	}
	return m.profile, nil
}

func newAuthProfile(t *testing.T, status models.ProfileStatus) *models.Profile {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Profile{
		ID:           7,
		Name:         "Ali",
		Surname:      "Valiyev",
		Email:        "ali@example.com",
		PasswordHash: string(hash),
		Role:         models.RolePublisher,
		Status:       status,
		Visible:      true,
	}
}

func newTestAuthService(repo authProfileRepository) *AuthService {
	return NewAuthService(repo, nil, zap.NewNop(), AuthConfig{
		AccessTokenSecret: "secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "article-api-test",
	})
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{profile: newAuthProfile(t, models.ProfileStatusActive)})

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "ali@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RolePublisher, resp.Profile.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ProfileID)
	assert.Equal(t, models.RolePublisher, claims.Role)
	assert.Equal(t, "ali@example.com", claims.Email)
	assert.Equal(t, "7", claims.Subject)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{profile: newAuthProfile(t, models.ProfileStatusActive)})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ali@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginBlockedProfile(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{profile: newAuthProfile(t, models.ProfileStatusBlocked)})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ali@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginValidation(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "email must be a valid email", appErr.Message)
}

func TestAuthServiceLoginRepositoryFailure(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{err: errors.New("db down")})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ali@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{})

	claims := &models.JWTClaims{ProfileID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(&mockProfileRepo{profile: newAuthProfile(t, models.ProfileStatusActive)})
	svc.now = func() time.Time { return time.Now().UTC().Add(-2 * time.Hour) }

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "ali@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.Error(t, err)
}
