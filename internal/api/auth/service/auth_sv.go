package authService

import (
	"os"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/auth"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	jwtPkg "github.com/qistanaushaf/Adkeu/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = 12 * time.Hour

// Login trades the shared admin access code for an edit-capability token.
// There are no user accounts: everyone holding the code is the same admin.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	accessCodeHash := os.Getenv("ADMIN_ACCESS_CODE_HASH")
	if accessCodeHash == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("ADMIN_ACCESS_CODE_HASH is not set")
		return auth.LoginResponse{}, auth.ErrNotConfigured
	}

	if err := s.bcryptUtils.ComparePassword(accessCodeHash, req.AccessCode); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Admin access code rejected")
		return auth.LoginResponse{}, auth.ErrInvalidAccessCode
	}

	accessToken, expiredAt, err := jwtPkg.Sign(map[string]interface{}{
		"role": string(entity.RoleAdmin),
		"iat":  time.Now().Unix(),
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		Role:        string(entity.RoleAdmin),
		ExpiredAt:   expiredAt,
	}, nil
}
