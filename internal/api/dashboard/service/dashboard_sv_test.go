package dashboardService

import (
	"context"
	"testing"

	dashboardRepository "github.com/qistanaushaf/Adkeu/internal/api/dashboard/repository"
	hibahRepository "github.com/qistanaushaf/Adkeu/internal/api/hibah/repository"
	paguRepository "github.com/qistanaushaf/Adkeu/internal/api/pagu/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	service IDashboardService
	hibah   hibahRepository.Repository
	pagu    paguRepository.Repository
}

func newFixture() fixture {
	kv := keyval.NewMemory()
	log := logrus.New()

	hibahRepo := hibahRepository.New(kv, log)
	paguRepo := paguRepository.New(kv, log)
	dashboardRepo := dashboardRepository.New(kv, log)

	return fixture{
		service: NewDashboardService(log, dashboardRepo, hibahRepo, paguRepo),
		hibah:   hibahRepo,
		pagu:    paguRepo,
	}
}

func income(id string, amount int64) entity.Transaction {
	return entity.Transaction{ID: id, Description: "Pemasukan", Amount: decimal.NewFromInt(amount), Type: entity.TransactionTypeIncome}
}

func expense(id string, amount int64, divisi string) entity.Transaction {
	return entity.Transaction{ID: id, Description: "Pengeluaran", Amount: decimal.NewFromInt(amount), Type: entity.TransactionTypeExpense, Divisi: divisi}
}

func TestGetSummary_BalanceSpansAllMonths(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.NoError(t, f.hibah.Append(ctx, entity.MonthJanuari, income("a", 1000)))
	assert.NoError(t, f.hibah.Append(ctx, entity.MonthFebruari, income("b", 500)))
	assert.NoError(t, f.hibah.Append(ctx, entity.MonthMaret, expense("c", 400, "Social Affairs")))

	summary, err := f.service.GetSummary(ctx, "Januari")
	assert.NoError(t, err)

	assert.True(t, summary.HibahBalance.Equal(decimal.NewFromInt(1100)),
		"balance should be 1000 + 500 - 400, got %s", summary.HibahBalance)
	assert.True(t, summary.MonthlyIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.MonthlyExpense.IsZero())
}

func TestGetSummary_MonthlyFiguresScopedToMonth(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.NoError(t, f.hibah.Append(ctx, entity.MonthMaret, income("a", 300)))
	assert.NoError(t, f.hibah.Append(ctx, entity.MonthMaret, expense("b", 120, "Social Affairs")))
	assert.NoError(t, f.hibah.Append(ctx, entity.MonthApril, expense("c", 999, "Foreign Affairs")))

	summary, err := f.service.GetSummary(ctx, "Maret")
	assert.NoError(t, err)

	assert.True(t, summary.MonthlyIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.MonthlyExpense.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Maret", summary.Month)
}

func TestGetSummary_PaguRemainingIsGlobal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.NoError(t, f.pagu.SetTotalBudget(ctx, decimal.NewFromInt(5000000)))
	assert.NoError(t, f.pagu.Prepend(ctx, entity.PaguEntry{ID: "a", Nominal: decimal.NewFromInt(1000000), Divisi: "Social Affairs", Month: entity.MonthJanuari}))
	assert.NoError(t, f.pagu.Prepend(ctx, entity.PaguEntry{ID: "b", Nominal: decimal.NewFromInt(250000), Divisi: "Foreign Affairs", Month: entity.MonthAgustus}))

	// Remaining never narrows to the requested month.
	summary, err := f.service.GetSummary(ctx, "Januari")
	assert.NoError(t, err)
	assert.True(t, summary.PaguRemaining.Equal(decimal.NewFromInt(3750000)),
		"remaining should be 5000000 - 1250000, got %s", summary.PaguRemaining)

	other, err := f.service.GetSummary(ctx, "Agustus")
	assert.NoError(t, err)
	assert.True(t, other.PaguRemaining.Equal(summary.PaguRemaining))
}

func TestGetSummary_InvalidMonth(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetSummary(context.Background(), "Smarch")
	assert.Error(t, err)
}

func TestGetCharts_ExcludesZeroMonths(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.NoError(t, f.hibah.Append(ctx, entity.MonthFebruari, income("a", 100)))
	assert.NoError(t, f.hibah.Append(ctx, entity.MonthNovember, expense("b", 60, "Social Affairs")))

	charts, err := f.service.GetCharts(ctx)
	assert.NoError(t, err)

	assert.Len(t, charts.Monthly, 2)
	assert.Equal(t, "Februari", charts.Monthly[0].Month)
	assert.Equal(t, "November", charts.Monthly[1].Month)
	assert.True(t, charts.Monthly[1].Expense.Equal(decimal.NewFromInt(60)))
}

func TestGetCharts_DivisionTotalsKeepFirstSeenOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Prepends: entry list order ends up C, B, A.
	assert.NoError(t, f.pagu.Prepend(ctx, entity.PaguEntry{ID: "1", Nominal: decimal.NewFromInt(100), Divisi: "A", Month: entity.MonthJanuari}))
	assert.NoError(t, f.pagu.Prepend(ctx, entity.PaguEntry{ID: "2", Nominal: decimal.NewFromInt(50), Divisi: "B", Month: entity.MonthJanuari}))
	assert.NoError(t, f.pagu.Prepend(ctx, entity.PaguEntry{ID: "3", Nominal: decimal.NewFromInt(25), Divisi: "A", Month: entity.MonthFebruari}))

	charts, err := f.service.GetCharts(ctx)
	assert.NoError(t, err)

	assert.Len(t, charts.PaguPerDivisi, 2)
	assert.Equal(t, "A", charts.PaguPerDivisi[0].Divisi)
	assert.True(t, charts.PaguPerDivisi[0].Total.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, "B", charts.PaguPerDivisi[1].Divisi)
	assert.True(t, charts.PaguPerDivisi[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestTheme_DefaultAndRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	theme, err := f.service.GetTheme(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, theme)

	assert.NoError(t, f.service.SetTheme(ctx, "dark"))

	theme, err = f.service.GetTheme(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, theme)
}

func TestSetTheme_RejectsUnknownTheme(t *testing.T) {
	f := newFixture()

	err := f.service.SetTheme(context.Background(), "solarized")
	assert.Error(t, err)
}
