package excel

import (
	"bytes"
	"testing"

	"github.com/qistanaushaf/Adkeu/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestReportFileName(t *testing.T) {
	t.Setenv("ORG_TAG", "")
	t.Setenv("ORG_PERIOD", "")

	assert.Equal(t, "Hibah_HIMAHI_Januari_2026.xlsx", ReportFileName(entity.MonthJanuari))

	t.Setenv("ORG_TAG", "HMJ")
	t.Setenv("ORG_PERIOD", "2027")
	assert.Equal(t, "Hibah_HMJ_Mei_2027.xlsx", ReportFileName(entity.MonthMei))
}

func TestMonthlyReport_SplitsIncomeAndExpense(t *testing.T) {
	transactions := []entity.Transaction{
		{ID: "a", Date: "2026-03-01", Description: "Dana hibah", Amount: decimal.NewFromInt(500000), Type: entity.TransactionTypeIncome},
		{ID: "b", Date: "2026-03-10", Description: "Konsumsi rapat", Amount: decimal.NewFromInt(150000), Type: entity.TransactionTypeExpense, ProgramKerja: "Rapat Kerja", Divisi: "Social Affairs"},
	}

	content, err := MonthlyReport(entity.MonthMaret, transactions)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Pemasukan", "Pengeluaran"}, f.GetSheetList())

	desc, err := f.GetCellValue("Pemasukan", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Dana hibah", desc)

	proker, err := f.GetCellValue("Pengeluaran", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Rapat Kerja", proker)

	divisi, err := f.GetCellValue("Pengeluaran", "C2")
	assert.NoError(t, err)
	assert.Equal(t, "Social Affairs", divisi)
}

func TestMonthlyReport_EmptyMonthGetsPlaceholders(t *testing.T) {
	content, err := MonthlyReport(entity.MonthJuni, nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	incomeRow, err := f.GetCellValue("Pemasukan", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Tidak ada pemasukan", incomeRow)

	expenseRow, err := f.GetCellValue("Pengeluaran", "D2")
	assert.NoError(t, err)
	assert.Equal(t, "Tidak ada pengeluaran", expenseRow)
}

func TestMonthlyReport_TotalsRow(t *testing.T) {
	transactions := []entity.Transaction{
		{ID: "a", Date: "2026-03-01", Description: "Satu", Amount: decimal.NewFromInt(100), Type: entity.TransactionTypeIncome},
		{ID: "b", Date: "2026-03-02", Description: "Dua", Amount: decimal.NewFromInt(250), Type: entity.TransactionTypeIncome},
	}

	content, err := MonthlyReport(entity.MonthMaret, transactions)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue("Pemasukan", "C4")
	assert.NoError(t, err)
	assert.Equal(t, "350", total)
}
