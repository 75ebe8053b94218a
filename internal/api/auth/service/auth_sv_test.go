package authService

import (
	"context"
	"testing"

	"github.com/qistanaushaf/Adkeu/internal/api/auth"
	"github.com/qistanaushaf/Adkeu/pkg/bcrypt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T, accessCode string) IAuthService {
	t.Helper()

	bcryptUtils := bcrypt.New()
	hash, err := bcryptUtils.HashPassword(accessCode)
	assert.NoError(t, err)

	t.Setenv("ADMIN_ACCESS_CODE_HASH", hash)
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	return NewAuthService(logrus.New(), bcryptUtils)
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	s := newService(t, "kode-rahasia")

	resp, err := s.Login(context.Background(), auth.LoginRequest{AccessCode: "kode-rahasia"})
	assert.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Role)
	assert.NotEmpty(t, resp.AccessToken)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLogin_RejectsWrongAccessCode(t *testing.T) {
	s := newService(t, "kode-rahasia")

	_, err := s.Login(context.Background(), auth.LoginRequest{AccessCode: "salah"})

	assert.ErrorIs(t, err, auth.ErrInvalidAccessCode)
}

func TestLogin_FailsWhenHashNotConfigured(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE_HASH", "")

	s := NewAuthService(logrus.New(), bcrypt.New())

	_, err := s.Login(context.Background(), auth.LoginRequest{AccessCode: "apapun"})

	assert.ErrorIs(t, err, auth.ErrNotConfigured)
}
