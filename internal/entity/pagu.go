package entity

import (
	"github.com/qistanaushaf/Adkeu/internal/api/pagu"

	"github.com/shopspring/decimal"
)

// PaguPlaceholderPhotoURL backs entries submitted without evidence.
const PaguPlaceholderPhotoURL = "https://via.placeholder.com/400x300?text=No+Photo"

// PaguEntry is one budget-allocation record. The month field is a display tag
// used only for filtered listing; remaining-budget math always spans every
// entry regardless of month.
type PaguEntry struct {
	ID          string          `json:"id"`
	Nominal     decimal.Decimal `json:"nominal"`
	Divisi      string          `json:"divisi"`
	PhotoURL    string          `json:"photoUrl"`
	Description string          `json:"description"`
	Month       Month           `json:"month"`
	CreatedAt   string          `json:"createdAt"`
}

func (e *PaguEntry) Validate() error {
	if e.Nominal.IsNegative() {
		return pagu.ErrInvalidNominal
	}

	if e.Divisi == "" {
		return pagu.ErrInvalidDivisi
	}

	if !IsValidMonth(string(e.Month)) {
		return pagu.ErrInvalidMonth
	}

	return nil
}
