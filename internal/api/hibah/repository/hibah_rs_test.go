package hibahRepository

import (
	"context"
	"testing"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRepository() Repository {
	return New(keyval.NewMemory(), logrus.New())
}

func TestLedger_FirstLoadHasTwelveEmptyBuckets(t *testing.T) {
	repo := newTestRepository()

	ledger := repo.Ledger(context.Background())

	assert.Len(t, ledger, 12)
	assert.Equal(t, entity.MonthJanuari, ledger[0].Month)
	assert.Equal(t, entity.MonthDesember, ledger[11].Month)
	for _, bucket := range ledger {
		assert.Empty(t, bucket.Transactions)
	}
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	first := entity.Transaction{ID: "a", Description: "Dana hibah", Amount: decimal.NewFromInt(100), Type: entity.TransactionTypeIncome}
	second := entity.Transaction{ID: "b", Description: "Konsumsi", Amount: decimal.NewFromInt(40), Type: entity.TransactionTypeExpense}

	assert.NoError(t, repo.Append(ctx, entity.MonthMaret, first))
	assert.NoError(t, repo.Append(ctx, entity.MonthMaret, second))

	ledger := repo.Ledger(ctx)
	assert.Equal(t, []string{"a", "b"}, []string{
		ledger[2].Transactions[0].ID,
		ledger[2].Transactions[1].ID,
	})
}

func TestAppend_DoesNotTouchOtherMonths(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	tx := entity.Transaction{ID: "a", Description: "Dana", Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeIncome}
	assert.NoError(t, repo.Append(ctx, entity.MonthJuni, tx))

	ledger := repo.Ledger(ctx)
	for _, bucket := range ledger {
		if bucket.Month == entity.MonthJuni {
			assert.Len(t, bucket.Transactions, 1)
		} else {
			assert.Empty(t, bucket.Transactions)
		}
	}
}

func TestReplace_RewritesMatchingEntryInPlace(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Append(ctx, entity.MonthApril, entity.Transaction{ID: "a", Description: "Old", Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeIncome}))
	assert.NoError(t, repo.Append(ctx, entity.MonthApril, entity.Transaction{ID: "b", Description: "Keep", Amount: decimal.NewFromInt(2), Type: entity.TransactionTypeIncome}))

	found, err := repo.Replace(ctx, entity.MonthApril, "a", func(tx entity.Transaction) entity.Transaction {
		tx.Description = "New"
		return tx
	})

	assert.NoError(t, err)
	assert.True(t, found)

	ledger := repo.Ledger(ctx)
	assert.Equal(t, "New", ledger[3].Transactions[0].Description)
	assert.Equal(t, "Keep", ledger[3].Transactions[1].Description)
}

func TestReplace_MissingIDIsNoOp(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Append(ctx, entity.MonthApril, entity.Transaction{ID: "a", Description: "Only", Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeIncome}))

	found, err := repo.Replace(ctx, entity.MonthApril, "missing", func(tx entity.Transaction) entity.Transaction {
		tx.Description = "changed"
		return tx
	})

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "Only", repo.Ledger(ctx)[3].Transactions[0].Description)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Append(ctx, entity.MonthJuli, entity.Transaction{ID: "a", Description: "One", Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeIncome}))
	assert.NoError(t, repo.Append(ctx, entity.MonthJuli, entity.Transaction{ID: "b", Description: "Two", Amount: decimal.NewFromInt(2), Type: entity.TransactionTypeIncome}))

	found, err := repo.Delete(ctx, entity.MonthJuli, "a")
	assert.NoError(t, err)
	assert.True(t, found)

	ledger := repo.Ledger(ctx)
	assert.Len(t, ledger[6].Transactions, 1)
	assert.Equal(t, "b", ledger[6].Transactions[0].ID)
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	found, err := repo.Delete(ctx, entity.MonthJuli, "missing")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLedger_NormalizesPartialSnapshot(t *testing.T) {
	kv := keyval.NewMemory()
	ctx := context.Background()

	// A snapshot missing months and carrying an unknown one.
	assert.NoError(t, kv.Set(ctx, "himahi_finance",
		`[{"month":"Mei","transactions":[{"id":"x","date":"2026-05-01","description":"Dana","amount":"50","type":"INCOME"}]},{"month":"Bogus","transactions":[]}]`))

	repo := New(kv, logrus.New())
	ledger := repo.Ledger(ctx)

	assert.Len(t, ledger, 12)
	assert.Equal(t, entity.MonthMei, ledger[4].Month)
	assert.Len(t, ledger[4].Transactions, 1)
	for i, bucket := range ledger {
		if i != 4 {
			assert.Empty(t, bucket.Transactions)
		}
	}
}
