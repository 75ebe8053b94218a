package paguRepository

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

func TestPrepend_NewestEntryComesFirst(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Prepend(ctx, entity.PaguEntry{ID: "old", Nominal: decimal.NewFromInt(100), Divisi: "Social Affairs", Month: entity.MonthJanuari}))
	assert.NoError(t, repo.Prepend(ctx, entity.PaguEntry{ID: "new", Nominal: decimal.NewFromInt(200), Divisi: "Foreign Affairs", Month: entity.MonthFebruari}))

	entries := repo.Entries(ctx)
	assert.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].ID)
	assert.Equal(t, "old", entries[1].ID)
}

func TestReplace_KeepsIDAndPosition(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Prepend(ctx, entity.PaguEntry{ID: "a", Nominal: decimal.NewFromInt(100), Divisi: "Social Affairs", Month: entity.MonthJanuari, CreatedAt: "2026-01-10T00:00:00Z"}))

	found, err := repo.Replace(ctx, "a", func(entry entity.PaguEntry) entity.PaguEntry {
		entry.Nominal = decimal.NewFromInt(250)
		return entry
	})

	assert.NoError(t, err)
	assert.True(t, found)

	entries := repo.Entries(ctx)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "2026-01-10T00:00:00Z", entries[0].CreatedAt)
	assert.True(t, entries[0].Nominal.Equal(decimal.NewFromInt(250)))
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	found, err := repo.Delete(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestTotalBudget_DefaultsToZero(t *testing.T) {
	repo := newTestRepository()

	assert.True(t, repo.TotalBudget(context.Background()).IsZero())
}

func TestTotalBudget_RoundTrip(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.SetTotalBudget(ctx, decimal.NewFromInt(5000000)))
	assert.True(t, repo.TotalBudget(ctx).Equal(decimal.NewFromInt(5000000)))
}

func TestTotalBudget_UnparseableCountsAsZero(t *testing.T) {
	kv := keyval.NewMemory()
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, "himahi_total_pagu_budget", "not-a-number"))

	repo := New(kv, logrus.New())
	assert.True(t, repo.TotalBudget(ctx).IsZero())
}
