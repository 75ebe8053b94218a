package dashboard

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrInvalidMonth = response.NewError(400, "invalid month")
	ErrInvalidTheme = response.NewError(400, "invalid theme")
	ErrSaveTheme    = response.NewError(500, "failed to persist theme preference")
)
