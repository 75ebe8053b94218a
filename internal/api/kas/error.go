package kas

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrMemberNotFound      = response.NewError(404, "member not found")
	ErrInvalidDivision     = response.NewError(400, "invalid division")
	ErrInvalidMonth        = response.NewError(400, "invalid month")
	ErrInvalidConfirmToken = response.NewError(404, "delete confirmation not found or expired")
	ErrSaveRegistry        = response.NewError(500, "failed to persist dues registry")
	ErrSaveSubmissions     = response.NewError(500, "failed to persist form submissions")
)
