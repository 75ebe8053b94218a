package hibahService

import (
	"context"
	"testing"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/hibah"
	hibahRepository "github.com/qistanaushaf/Adkeu/internal/api/hibah/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	service IHibahService
	repo    hibahRepository.Repository
}

func newFixture() fixture {
	log := logrus.New()
	repo := hibahRepository.New(keyval.NewMemory(), log)

	return fixture{
		service: NewHibahService(log, repo, nil, utils.New(), confirm.NewRegistry()),
		repo:    repo,
	}
}

func TestCreateTransaction_IncomeStampedWithToday(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "Maret", hibah.CreateTransactionRequest{
		Description: "Dana hibah kampus",
		Amount:      500000,
		Type:        "INCOME",
		Date:        "1999-01-01",
	}, nil)
	assert.NoError(t, err)

	ledger := f.repo.Ledger(ctx)
	tx := ledger[2].Transactions[0]
	assert.Equal(t, time.Now().Format("2006-01-02"), tx.Date)
	assert.Empty(t, tx.ProgramKerja)
	assert.Empty(t, tx.Divisi)
	assert.NotEmpty(t, tx.ID)
}

func TestCreateTransaction_ExpenseKeepsFormFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "Maret", hibah.CreateTransactionRequest{
		Description:  "Konsumsi rapat",
		Amount:       150000,
		Type:         "EXPENSE",
		Date:         "2026-03-10",
		ProgramKerja: "Rapat Kerja",
		Divisi:       "Social Affairs",
	}, nil)
	assert.NoError(t, err)

	tx := f.repo.Ledger(ctx)[2].Transactions[0]
	assert.Equal(t, "2026-03-10", tx.Date)
	assert.Equal(t, "Rapat Kerja", tx.ProgramKerja)
	assert.Equal(t, "Social Affairs", tx.Divisi)
}

func TestCreateTransaction_InvalidMonth(t *testing.T) {
	f := newFixture()

	err := f.service.CreateTransaction(context.Background(), "March", hibah.CreateTransactionRequest{
		Description: "Dana",
		Amount:      1,
		Type:        "INCOME",
	}, nil)

	assert.ErrorIs(t, err, hibah.ErrInvalidMonth)
}

func TestUpdateTransaction_TypeIsImmutable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "April", hibah.CreateTransactionRequest{
		Description: "Dana hibah",
		Amount:      1000,
		Type:        "INCOME",
	}, nil)
	assert.NoError(t, err)

	id := f.repo.Ledger(ctx)[3].Transactions[0].ID

	err = f.service.UpdateTransaction(ctx, "April", id, hibah.UpdateTransactionRequest{
		Description: "Dana hibah revisi",
		Amount:      1200,
	}, nil)
	assert.NoError(t, err)

	tx := f.repo.Ledger(ctx)[3].Transactions[0]
	assert.Equal(t, entity.TransactionTypeIncome, tx.Type)
	assert.Equal(t, "Dana hibah revisi", tx.Description)
}

func TestUpdateTransaction_MissingIDIsSilentNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.UpdateTransaction(ctx, "April", "missing", hibah.UpdateTransactionRequest{
		Description: "Whatever",
		Amount:      1,
	}, nil)

	assert.NoError(t, err)
	assert.Empty(t, f.repo.Ledger(ctx)[3].Transactions)
}

func TestDeleteFlow_ConfirmRemovesStagedEntry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "Mei", hibah.CreateTransactionRequest{
		Description: "Dana",
		Amount:      10,
		Type:        "INCOME",
	}, nil)
	assert.NoError(t, err)

	id := f.repo.Ledger(ctx)[4].Transactions[0].ID

	token, _, err := f.service.RequestDelete(ctx, "Mei", id)
	assert.NoError(t, err)

	// Staging alone changes nothing.
	assert.Len(t, f.repo.Ledger(ctx)[4].Transactions, 1)

	assert.NoError(t, f.service.ConfirmDelete(ctx, "Mei", token))
	assert.Empty(t, f.repo.Ledger(ctx)[4].Transactions)
}

func TestDeleteFlow_CancelLeavesDataUntouched(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "Mei", hibah.CreateTransactionRequest{
		Description: "Dana",
		Amount:      10,
		Type:        "INCOME",
	}, nil)
	assert.NoError(t, err)

	id := f.repo.Ledger(ctx)[4].Transactions[0].ID

	token, _, err := f.service.RequestDelete(ctx, "Mei", id)
	assert.NoError(t, err)

	assert.NoError(t, f.service.CancelDelete(ctx, token))
	assert.ErrorIs(t, f.service.ConfirmDelete(ctx, "Mei", token), hibah.ErrInvalidConfirmToken)
	assert.Len(t, f.repo.Ledger(ctx)[4].Transactions, 1)
}

func TestDeleteFlow_TokenScopedToMonth(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.service.CreateTransaction(ctx, "Mei", hibah.CreateTransactionRequest{
		Description: "Dana",
		Amount:      10,
		Type:        "INCOME",
	}, nil)
	assert.NoError(t, err)

	id := f.repo.Ledger(ctx)[4].Transactions[0].ID

	token, _, err := f.service.RequestDelete(ctx, "Mei", id)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.service.ConfirmDelete(ctx, "Juni", token), hibah.ErrInvalidConfirmToken)
}

func TestGetMonthTransactions_SearchFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.NoError(t, f.service.CreateTransaction(ctx, "Juli", hibah.CreateTransactionRequest{
		Description: "Konsumsi rapat", Amount: 1, Type: "EXPENSE", Date: "2026-07-01", ProgramKerja: "Raker", Divisi: "Social Affairs",
	}, nil))
	assert.NoError(t, f.service.CreateTransaction(ctx, "Juli", hibah.CreateTransactionRequest{
		Description: "Transport", Amount: 2, Type: "EXPENSE", Date: "2026-07-02", ProgramKerja: "Kunjungan", Divisi: "Foreign Affairs",
	}, nil))

	matched, err := f.service.GetMonthTransactions(ctx, "Juli", "konsumsi")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Konsumsi rapat", matched[0].Description)

	matched, err = f.service.GetMonthTransactions(ctx, "Juli", "foreign")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Transport", matched[0].Description)
}
