package hibah

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	Description  string  `json:"description" form:"description" validate:"required"`
	Amount       float64 `json:"amount" form:"amount" validate:"gte=0"`
	Type         string  `json:"type" form:"type" validate:"required,oneof=INCOME EXPENSE"`
	Date         string  `json:"date" form:"date"`
	ProgramKerja string  `json:"program_kerja" form:"program_kerja"`
	Divisi       string  `json:"divisi" form:"divisi"`
}

// UpdateTransactionRequest carries no type field: the transaction type is
// fixed at creation and the edit flow never changes it.
type UpdateTransactionRequest struct {
	Description  string  `json:"description" form:"description" validate:"required"`
	Amount       float64 `json:"amount" form:"amount" validate:"gte=0"`
	Date         string  `json:"date" form:"date"`
	ProgramKerja string  `json:"program_kerja" form:"program_kerja"`
	Divisi       string  `json:"divisi" form:"divisi"`
	DeletePhoto  bool    `json:"delete_photo" form:"delete_photo"`
}

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" validate:"required"`
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	ProgramKerja string          `json:"program_kerja,omitempty"`
	Divisi       string          `json:"divisi,omitempty"`
}

type MonthTransactionsResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  decimal.Decimal       `json:"total_income"`
	TotalExpense decimal.Decimal       `json:"total_expense"`
	Balance      decimal.Decimal       `json:"balance"`
}

type LedgerBucketResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
}

type DeleteRequestResponse struct {
	ConfirmToken string `json:"confirm_token"`
	ExpiresAt    string `json:"expires_at"`
}
