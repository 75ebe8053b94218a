package kasRepository

import (
	"sync"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	rosterSlotKey      = "himahi_divisi_kas"
	submissionsSlotKey = "himahi_form_submissions"
)

type Repository interface {
	Roster(ctx context.Context) entity.DivisiKasContainer
	AppendMember(ctx context.Context, divisi string, member entity.MemberKas) error
	SetName(ctx context.Context, divisi string, id string, name string) (bool, error)
	TogglePayment(ctx context.Context, divisi string, id string, month entity.Month) (bool, error)
	ToggleLate(ctx context.Context, divisi string, id string, month entity.Month) (bool, error)
	DeleteMember(ctx context.Context, divisi string, id string) (bool, error)
	Submissions(ctx context.Context) []entity.FormSubmission
	AppendSubmission(ctx context.Context, submission entity.FormSubmission) error
}

type repository struct {
	rosterSlot      *store.Slot[entity.DivisiKasContainer]
	submissionsSlot *store.Slot[[]entity.FormSubmission]
	log             *logrus.Logger
	mutex           sync.Mutex
}

func New(kv keyval.Store, log *logrus.Logger) Repository {
	return &repository{
		rosterSlot: store.NewSlot(kv, rosterSlotKey, func() entity.DivisiKasContainer {
			return entity.DivisiKasContainer{}
		}, log),
		submissionsSlot: store.NewSlot(kv, submissionsSlotKey, func() []entity.FormSubmission {
			return []entity.FormSubmission{}
		}, log),
		log: log,
	}
}
