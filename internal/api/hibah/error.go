package hibah

import "github.com/qistanaushaf/Adkeu/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransaction     = response.NewError(400, "invalid transaction data")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidMonth           = response.NewError(400, "invalid month")
	ErrInvalidConfirmToken    = response.NewError(404, "delete confirmation not found or expired")
	ErrInvalidPhotoFile       = response.NewError(400, "invalid photo file type")
	ErrFailedToUploadPhoto    = response.NewError(500, "failed to upload photo evidence")
	ErrSaveLedger             = response.NewError(500, "failed to persist finance ledger")
	ErrExportWorkbook         = response.NewError(500, "failed to build export workbook")
)
