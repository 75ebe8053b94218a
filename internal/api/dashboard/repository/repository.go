package dashboardRepository

import (
	"sync"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const themeSlotKey = "himahi_theme"

type Repository interface {
	Theme(ctx context.Context) entity.Theme
	SetTheme(ctx context.Context, theme entity.Theme) error
}

type repository struct {
	themeSlot *store.RawSlot
	log       *logrus.Logger
	mutex     sync.Mutex
}

func New(kv keyval.Store, log *logrus.Logger) Repository {
	return &repository{
		themeSlot: store.NewRawSlot(kv, themeSlotKey, defaultTheme, log),
		log:       log,
	}
}
