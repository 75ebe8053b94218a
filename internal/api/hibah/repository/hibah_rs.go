package hibahRepository

import (
	"github.com/qistanaushaf/Adkeu/internal/entity"

	"golang.org/x/net/context"
)

func (r *repository) Ledger(ctx context.Context) []entity.MonthlyData {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return entity.NormalizeLedger(r.slot.Load(ctx))
}

func (r *repository) Append(ctx context.Context, month entity.Month, transaction entity.Transaction) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ledger := entity.NormalizeLedger(r.slot.Load(ctx))
	for i := range ledger {
		if ledger[i].Month == month {
			ledger[i].Transactions = append(ledger[i].Transactions, transaction)
			break
		}
	}

	return r.slot.Save(ctx, ledger)
}

// Replace rewrites the matching entry in place via apply, keeping its position
// in the bucket. Returns false without writing when the id is absent.
func (r *repository) Replace(ctx context.Context, month entity.Month, id string, apply func(entity.Transaction) entity.Transaction) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ledger := entity.NormalizeLedger(r.slot.Load(ctx))
	for i := range ledger {
		if ledger[i].Month != month {
			continue
		}
		for j := range ledger[i].Transactions {
			if ledger[i].Transactions[j].ID == id {
				ledger[i].Transactions[j] = apply(ledger[i].Transactions[j])
				return true, r.slot.Save(ctx, ledger)
			}
		}
	}

	return false, nil
}

func (r *repository) Delete(ctx context.Context, month entity.Month, id string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ledger := entity.NormalizeLedger(r.slot.Load(ctx))
	for i := range ledger {
		if ledger[i].Month != month {
			continue
		}
		for j := range ledger[i].Transactions {
			if ledger[i].Transactions[j].ID == id {
				ledger[i].Transactions = append(ledger[i].Transactions[:j], ledger[i].Transactions[j+1:]...)
				return true, r.slot.Save(ctx, ledger)
			}
		}
	}

	return false, nil
}
