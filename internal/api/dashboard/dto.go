package dashboard

import "github.com/shopspring/decimal"

type SummaryResponse struct {
	Month          string          `json:"month"`
	HibahBalance   decimal.Decimal `json:"hibah_balance"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	PaguRemaining  decimal.Decimal `json:"pagu_remaining"`
}

type MonthlySeriesPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type DivisionTotal struct {
	Divisi string          `json:"divisi"`
	Total  decimal.Decimal `json:"total"`
}

type ChartsResponse struct {
	Monthly       []MonthlySeriesPoint `json:"monthly"`
	PaguPerDivisi []DivisionTotal      `json:"pagu_per_divisi"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
