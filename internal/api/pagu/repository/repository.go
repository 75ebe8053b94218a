package paguRepository

import (
	"sync"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	entriesSlotKey = "himahi_pagu_entries"
	budgetSlotKey  = "himahi_total_pagu_budget"
)

type Repository interface {
	Entries(ctx context.Context) []entity.PaguEntry
	Prepend(ctx context.Context, entry entity.PaguEntry) error
	Replace(ctx context.Context, id string, apply func(entity.PaguEntry) entity.PaguEntry) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	TotalBudget(ctx context.Context) decimal.Decimal
	SetTotalBudget(ctx context.Context, budget decimal.Decimal) error
}

type repository struct {
	entriesSlot *store.Slot[[]entity.PaguEntry]
	budgetSlot  *store.RawSlot
	log         *logrus.Logger
	mutex       sync.Mutex
}

func New(kv keyval.Store, log *logrus.Logger) Repository {
	return &repository{
		entriesSlot: store.NewSlot(kv, entriesSlotKey, func() []entity.PaguEntry {
			return []entity.PaguEntry{}
		}, log),
		budgetSlot: store.NewRawSlot(kv, budgetSlotKey, func() string { return "0" }, log),
		log:        log,
	}
}
