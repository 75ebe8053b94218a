package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonths_CalendarOrder(t *testing.T) {
	months := Months()

	assert.Len(t, months, 12)
	assert.Equal(t, MonthJanuari, months[0])
	assert.Equal(t, MonthDesember, months[11])
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("Agustus"))
	assert.False(t, IsValidMonth("August"))
	assert.False(t, IsValidMonth(""))
}

func TestCurrentMonth(t *testing.T) {
	assert.Equal(t, MonthJanuari, CurrentMonth(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MonthDesember, CurrentMonth(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeLedger_DropsUnknownMonths(t *testing.T) {
	normalized := NormalizeLedger([]MonthlyData{
		{Month: "Bogus", Transactions: []Transaction{{ID: "x"}}},
		{Month: MonthDesember, Transactions: []Transaction{{ID: "y"}}},
	})

	assert.Len(t, normalized, 12)
	assert.Len(t, normalized[11].Transactions, 1)
	for i := 0; i < 11; i++ {
		assert.Empty(t, normalized[i].Transactions)
	}
}
