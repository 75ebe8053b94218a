package dashboardService

import (
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/dashboard"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GetSummary recomputes the headline figures from the current snapshots on
// every call; nothing is cached between reads.
func (s *dashboardService) GetSummary(ctx context.Context, month string) (dashboard.SummaryResponse, error) {
	if month == "" {
		month = string(entity.CurrentMonth(time.Now()))
	}
	if !entity.IsValidMonth(month) {
		return dashboard.SummaryResponse{}, dashboard.ErrInvalidMonth
	}

	var (
		balance        = decimal.Zero
		monthlyIncome  = decimal.Zero
		monthlyExpense = decimal.Zero
	)

	for _, bucket := range s.hibahRepository.Ledger(ctx) {
		for _, tx := range bucket.Transactions {
			if tx.Type == entity.TransactionTypeIncome {
				balance = balance.Add(tx.Amount)
				if bucket.Month == entity.Month(month) {
					monthlyIncome = monthlyIncome.Add(tx.Amount)
				}
			} else {
				balance = balance.Sub(tx.Amount)
				if bucket.Month == entity.Month(month) {
					monthlyExpense = monthlyExpense.Add(tx.Amount)
				}
			}
		}
	}

	// Pagu remaining is always the yearly figure: ceiling minus every entry,
	// never scoped to the requested month.
	spent := decimal.Zero
	for _, entry := range s.paguRepository.Entries(ctx) {
		spent = spent.Add(entry.Nominal)
	}

	return dashboard.SummaryResponse{
		Month:          month,
		HibahBalance:   balance,
		MonthlyIncome:  monthlyIncome,
		MonthlyExpense: monthlyExpense,
		PaguRemaining:  s.paguRepository.TotalBudget(ctx).Sub(spent),
	}, nil
}

func (s *dashboardService) GetCharts(ctx context.Context) (dashboard.ChartsResponse, error) {
	// Months with no activity at all are dropped from the series rather than
	// zero-padded.
	monthly := make([]dashboard.MonthlySeriesPoint, 0, 12)
	for _, bucket := range s.hibahRepository.Ledger(ctx) {
		income := decimal.Zero
		expense := decimal.Zero
		for _, tx := range bucket.Transactions {
			if tx.Type == entity.TransactionTypeIncome {
				income = income.Add(tx.Amount)
			} else {
				expense = expense.Add(tx.Amount)
			}
		}

		if income.IsZero() && expense.IsZero() {
			continue
		}
		monthly = append(monthly, dashboard.MonthlySeriesPoint{
			Month:   string(bucket.Month),
			Income:  income,
			Expense: expense,
		})
	}

	// Division totals keep first-seen order of the division key across the
	// entry list.
	totals := map[string]decimal.Decimal{}
	order := make([]string, 0)
	for _, entry := range s.paguRepository.Entries(ctx) {
		if _, seen := totals[entry.Divisi]; !seen {
			order = append(order, entry.Divisi)
		}
		totals[entry.Divisi] = totals[entry.Divisi].Add(entry.Nominal)
	}

	perDivisi := make([]dashboard.DivisionTotal, 0, len(order))
	for _, divisi := range order {
		perDivisi = append(perDivisi, dashboard.DivisionTotal{
			Divisi: divisi,
			Total:  totals[divisi],
		})
	}

	return dashboard.ChartsResponse{
		Monthly:       monthly,
		PaguPerDivisi: perDivisi,
	}, nil
}

func (s *dashboardService) GetTheme(ctx context.Context) (entity.Theme, error) {
	return s.dashboardRepository.Theme(ctx), nil
}

func (s *dashboardService) SetTheme(ctx context.Context, theme string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTheme(theme) {
		return dashboard.ErrInvalidTheme
	}

	if err := s.dashboardRepository.SetTheme(ctx, entity.Theme(theme)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist theme preference")
		return dashboard.ErrSaveTheme
	}

	return nil
}
