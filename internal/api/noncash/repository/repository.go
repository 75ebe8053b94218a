package noncashRepository

import (
	"sync"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const evidenceSlotKey = "himahi_noncash_evidence"

type Repository interface {
	Evidence(ctx context.Context) []entity.NonCashEvidence
	Append(ctx context.Context, evidence entity.NonCashEvidence) error
	SetTitle(ctx context.Context, id string, title string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	slot  *store.Slot[[]entity.NonCashEvidence]
	log   *logrus.Logger
	mutex sync.Mutex
}

func New(kv keyval.Store, log *logrus.Logger) Repository {
	return &repository{
		slot: store.NewSlot(kv, evidenceSlotKey, func() []entity.NonCashEvidence {
			return []entity.NonCashEvidence{}
		}, log),
		log: log,
	}
}
