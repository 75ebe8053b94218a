package paguService

import (
	"mime/multipart"
	"time"

	paguRepository "github.com/qistanaushaf/Adkeu/internal/api/pagu/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/s3"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/qistanaushaf/Adkeu/internal/api/pagu"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPaguService interface {
	GetEntries(ctx context.Context, month string, search string) ([]entity.PaguEntry, error)
	CreateEntry(ctx context.Context, req pagu.CreateEntryRequest, photoFile *multipart.FileHeader) (entity.PaguEntry, error)
	UpdateEntry(ctx context.Context, id string, req pagu.UpdateEntryRequest, photoFile *multipart.FileHeader) error
	RequestDelete(ctx context.Context, id string) (string, time.Time, error)
	ConfirmDelete(ctx context.Context, token string) error
	CancelDelete(ctx context.Context, token string) error
	GetBudget(ctx context.Context) (total decimal.Decimal, spent decimal.Decimal, remaining decimal.Decimal, err error)
	SetBudget(ctx context.Context, req pagu.UpdateBudgetRequest) error
}

type paguService struct {
	log            *logrus.Logger
	paguRepository paguRepository.Repository
	s3             s3.ItfS3
	utils          utils.IUtils
	confirms       *confirm.Registry
}

func NewPaguService(log *logrus.Logger, pr paguRepository.Repository, s3 s3.ItfS3, utils utils.IUtils, confirms *confirm.Registry) IPaguService {
	return &paguService{
		log:            log,
		paguRepository: pr,
		s3:             s3,
		utils:          utils,
		confirms:       confirms,
	}
}
