package pagu

import "github.com/shopspring/decimal"

type CreateEntryRequest struct {
	Nominal     float64 `json:"nominal" form:"nominal" validate:"gte=0"`
	Divisi      string  `json:"divisi" form:"divisi" validate:"required"`
	Description string  `json:"description" form:"description"`
	Month       string  `json:"month" form:"month" validate:"required"`
}

type UpdateEntryRequest struct {
	Nominal     float64 `json:"nominal" form:"nominal" validate:"gte=0"`
	Divisi      string  `json:"divisi" form:"divisi" validate:"required"`
	Description string  `json:"description" form:"description"`
	Month       string  `json:"month" form:"month" validate:"required"`
}

type UpdateBudgetRequest struct {
	TotalBudget float64 `json:"total_budget" validate:"gte=0"`
}

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" validate:"required"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	Nominal     decimal.Decimal `json:"nominal"`
	Divisi      string          `json:"divisi"`
	PhotoURL    string          `json:"photo_url"`
	Description string          `json:"description"`
	Month       string          `json:"month"`
	CreatedAt   string          `json:"created_at"`
}

type BudgetResponse struct {
	TotalBudget decimal.Decimal `json:"total_budget"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type DeleteRequestResponse struct {
	ConfirmToken string `json:"confirm_token"`
	ExpiresAt    string `json:"expires_at"`
}
