package hibahRepository

import (
	"sync"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const ledgerSlotKey = "himahi_finance"

type Repository interface {
	Ledger(ctx context.Context) []entity.MonthlyData
	Append(ctx context.Context, month entity.Month, transaction entity.Transaction) error
	Replace(ctx context.Context, month entity.Month, id string, apply func(entity.Transaction) entity.Transaction) (bool, error)
	Delete(ctx context.Context, month entity.Month, id string) (bool, error)
}

// repository owns the finance slot. The mutex serializes the
// load-update-save cycle, so concurrent mutations never clobber each other;
// the slot itself is always written whole.
type repository struct {
	slot  *store.Slot[[]entity.MonthlyData]
	log   *logrus.Logger
	mutex sync.Mutex
}

func New(kv keyval.Store, log *logrus.Logger) Repository {
	return &repository{
		slot: store.NewSlot(kv, ledgerSlotKey, entity.EmptyLedger, log),
		log:  log,
	}
}
