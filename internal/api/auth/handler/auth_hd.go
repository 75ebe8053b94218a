package authHandler

import (
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/auth"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	"github.com/qistanaushaf/Adkeu/pkg/handlerUtil"
	jwtPkg "github.com/qistanaushaf/Adkeu/pkg/jwt"
	"github.com/qistanaushaf/Adkeu/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing admin login request")

	var req auth.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.authService.Login(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "admin_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

// Session lets the frontend check whether its stored token still grants the
// edit capability.
func (h *AuthHandler) Session(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"role":      string(admin.Role),
		"issued_at": admin.IssuedAt,
	})
}
