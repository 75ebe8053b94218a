package excel

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qistanaushaf/Adkeu/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetIncome  = "Pemasukan"
	sheetExpense = "Pengeluaran"

	defaultOrgTag    = "HIMAHI"
	defaultOrgPeriod = "2026"
)

var (
	incomeHeader  = []string{"Tanggal", "Keterangan", "Nominal"}
	expenseHeader = []string{"Tanggal", "Program Kerja", "Divisi", "Keterangan", "Nominal"}
)

// ReportFileName builds the download name for a monthly report, e.g.
// Hibah_HIMAHI_Januari_2026.xlsx. Tag and period come from ORG_TAG and
// ORG_PERIOD when set.
func ReportFileName(month entity.Month) string {
	tag := os.Getenv("ORG_TAG")
	if tag == "" {
		tag = defaultOrgTag
	}
	period := os.Getenv("ORG_PERIOD")
	if period == "" {
		period = defaultOrgPeriod
	}
	return fmt.Sprintf("Hibah_%s_%s_%s.xlsx", tag, month, period)
}

// MonthlyReport renders one month of the hibah ledger as a two-sheet
// workbook, income and expense split apart. Months with no records on a
// side still get the sheet, with a single placeholder row.
func MonthlyReport(month entity.Month, transactions []entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()

	var income, expense []entity.Transaction
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeIncome {
			income = append(income, tx)
		} else {
			expense = append(expense, tx)
		}
	}

	if err := writeIncomeSheet(f, income); err != nil {
		return nil, err
	}
	if err := writeExpenseSheet(f, expense); err != nil {
		return nil, err
	}

	// excelize seeds every workbook with Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(sheetIncome)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeIncomeSheet(f *excelize.File, transactions []entity.Transaction) error {
	if _, err := f.NewSheet(sheetIncome); err != nil {
		return err
	}
	if err := writeHeader(f, sheetIncome, incomeHeader); err != nil {
		return err
	}

	if len(transactions) == 0 {
		return f.SetSheetRow(sheetIncome, "A2", &[]interface{}{"-", "Tidak ada pemasukan", 0})
	}

	total := decimal.Zero
	for i, tx := range transactions {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{tx.Date, tx.Description, toFloat(tx.Amount)}
		if err := f.SetSheetRow(sheetIncome, cell, &row); err != nil {
			return err
		}
		total = total.Add(tx.Amount)
	}

	totalCell := fmt.Sprintf("A%d", len(transactions)+2)
	return f.SetSheetRow(sheetIncome, totalCell, &[]interface{}{"", "Total", toFloat(total)})
}

func writeExpenseSheet(f *excelize.File, transactions []entity.Transaction) error {
	if _, err := f.NewSheet(sheetExpense); err != nil {
		return err
	}
	if err := writeHeader(f, sheetExpense, expenseHeader); err != nil {
		return err
	}

	if len(transactions) == 0 {
		return f.SetSheetRow(sheetExpense, "A2", &[]interface{}{"-", "-", "-", "Tidak ada pengeluaran", 0})
	}

	total := decimal.Zero
	for i, tx := range transactions {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{tx.Date, tx.ProgramKerja, tx.Divisi, tx.Description, toFloat(tx.Amount)}
		if err := f.SetSheetRow(sheetExpense, cell, &row); err != nil {
			return err
		}
		total = total.Add(tx.Amount)
	}

	totalCell := fmt.Sprintf("A%d", len(transactions)+2)
	return f.SetSheetRow(sheetExpense, totalCell, &[]interface{}{"", "", "", "Total", toFloat(total)})
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return f.SetSheetRow(sheet, "A1", &cells)
}

func toFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}
