package middleware

import (
	"strings"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	jwtPkg "github.com/qistanaushaf/Adkeu/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type adminMiddleware struct {
}

func newAdminMiddleware() *adminMiddleware {
	return &adminMiddleware{}
}

// NewAdminMiddleware guards mutating routes: only requests carrying a valid
// admin capability token issued by the auth login may pass. Read routes stay
// open and never go through here.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path":   ctx.Path(),
			"method": ctx.Method(),
		}).Warn("Authorization header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, admin access token invalid or expired",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"error": "Authorization header format is invalid",
		}).Warn("Authorization header check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, admin access token invalid or expired",
		})
	}

	adminToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, admin access token invalid or expired",
		})
	}

	claims, ok := adminToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.WithFields(logrus.Fields{
			"error": "Invalid token claims",
		}).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, admin access token invalid or expired",
		})
	}

	role, _ := claims["role"].(string)
	if entity.UserRole(role) != entity.RoleAdmin {
		m.log.WithFields(logrus.Fields{
			"role": role,
		}).Warn("Token does not carry the admin role")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden, admin role required",
		})
	}

	issuedAt := int64(0)
	if iat, ok := claims["iat"].(float64); ok {
		issuedAt = int64(iat)
	}

	ctx.Locals("admin", entity.AdminLoginData{
		Role:     entity.RoleAdmin,
		IssuedAt: issuedAt,
	})

	return ctx.Next()
}
