package pagu

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrEntryNotFound       = response.NewError(404, "pagu entry not found")
	ErrInvalidNominal      = response.NewError(400, "invalid nominal amount")
	ErrInvalidDivisi       = response.NewError(400, "invalid divisi")
	ErrInvalidMonth        = response.NewError(400, "invalid month")
	ErrInvalidBudget       = response.NewError(400, "invalid budget amount")
	ErrInvalidConfirmToken = response.NewError(404, "delete confirmation not found or expired")
	ErrInvalidPhotoFile    = response.NewError(400, "invalid photo file type")
	ErrFailedToUploadPhoto = response.NewError(500, "failed to upload photo evidence")
	ErrSaveEntries         = response.NewError(500, "failed to persist pagu entries")
	ErrSaveBudget          = response.NewError(500, "failed to persist pagu budget")
)
