package paguRepository

import (
	"github.com/qistanaushaf/Adkeu/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (r *repository) Entries(ctx context.Context) []entity.PaguEntry {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.entriesSlot.Load(ctx)
}

// Prepend puts the new entry at the head of the list, so listings show the
// most recent allocation first.
func (r *repository) Prepend(ctx context.Context, entry entity.PaguEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entries := r.entriesSlot.Load(ctx)
	entries = append([]entity.PaguEntry{entry}, entries...)

	return r.entriesSlot.Save(ctx, entries)
}

func (r *repository) Replace(ctx context.Context, id string, apply func(entity.PaguEntry) entity.PaguEntry) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entries := r.entriesSlot.Load(ctx)
	for i := range entries {
		if entries[i].ID == id {
			entries[i] = apply(entries[i])
			return true, r.entriesSlot.Save(ctx, entries)
		}
	}

	return false, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entries := r.entriesSlot.Load(ctx)
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return true, r.entriesSlot.Save(ctx, entries)
		}
	}

	return false, nil
}

// TotalBudget parses the bare-string ceiling slot. Anything unparseable
// counts as zero, so a corrupt slot never blocks the budget view.
func (r *repository) TotalBudget(ctx context.Context) decimal.Decimal {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	raw := r.budgetSlot.Load(ctx)
	budget, err := decimal.NewFromString(raw)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"value": raw,
			"error": err.Error(),
		}).Warn("Unparseable budget ceiling, treating as zero")
		return decimal.Zero
	}

	return budget
}

func (r *repository) SetTotalBudget(ctx context.Context, budget decimal.Decimal) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.budgetSlot.Save(ctx, budget.String())
}
