package auth

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrInvalidAccessCode = response.NewError(401, "invalid access code")
	ErrNotConfigured     = response.NewError(500, "admin access is not configured")
)
