package entity

import (
	"github.com/qistanaushaf/Adkeu/internal/api/hibah"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction is one grant-ledger entry. JSON tags follow the persisted slot
// shape, so snapshots written by earlier editions of the system load unchanged.
type Transaction struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         TransactionType `json:"type"`
	PhotoURL     string          `json:"photoUrl,omitempty"`
	ProgramKerja string          `json:"programKerja,omitempty"`
	Divisi       string          `json:"divisi,omitempty"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return hibah.ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return hibah.ErrInvalidAmount
	}

	if t.Description == "" {
		return hibah.ErrInvalidTransaction
	}

	return nil
}

// MonthlyData is one of the 12 fixed buckets of the finance ledger.
// Transactions keep insertion order; they are not date-sorted.
type MonthlyData struct {
	Month        Month         `json:"month"`
	Transactions []Transaction `json:"transactions"`
}

// EmptyLedger builds the default finance slot: one empty bucket per month,
// calendar order.
func EmptyLedger() []MonthlyData {
	ledger := make([]MonthlyData, 0, 12)
	for _, m := range Months() {
		ledger = append(ledger, MonthlyData{Month: m, Transactions: []Transaction{}})
	}
	return ledger
}

// NormalizeLedger restores the exactly-12-buckets invariant on a loaded
// snapshot: buckets are reordered to calendar order, missing months are
// recreated empty and unknown months are dropped.
func NormalizeLedger(ledger []MonthlyData) []MonthlyData {
	byMonth := make(map[Month][]Transaction, len(ledger))
	for _, bucket := range ledger {
		if IsValidMonth(string(bucket.Month)) {
			byMonth[bucket.Month] = bucket.Transactions
		}
	}

	normalized := make([]MonthlyData, 0, 12)
	for _, m := range Months() {
		transactions := byMonth[m]
		if transactions == nil {
			transactions = []Transaction{}
		}
		normalized = append(normalized, MonthlyData{Month: m, Transactions: transactions})
	}
	return normalized
}
