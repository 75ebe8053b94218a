package noncash

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrEvidenceNotFound    = response.NewError(404, "evidence not found")
	ErrInvalidMonth        = response.NewError(400, "invalid month")
	ErrInvalidConfirmToken = response.NewError(404, "delete confirmation not found or expired")
	ErrInvalidImageFile    = response.NewError(400, "invalid image file type")
	ErrFailedToUploadImage = response.NewError(500, "failed to upload evidence image")
	ErrSaveEvidence        = response.NewError(500, "failed to persist evidence list")
)
