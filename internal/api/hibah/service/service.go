package hibahService

import (
	"mime/multipart"
	"time"

	hibahRepository "github.com/qistanaushaf/Adkeu/internal/api/hibah/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/s3"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/qistanaushaf/Adkeu/internal/api/hibah"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IHibahService interface {
	GetLedger(ctx context.Context) ([]entity.MonthlyData, error)
	GetMonthTransactions(ctx context.Context, month string, search string) ([]entity.Transaction, error)
	CreateTransaction(ctx context.Context, month string, req hibah.CreateTransactionRequest, photoFile *multipart.FileHeader) error
	UpdateTransaction(ctx context.Context, month string, id string, req hibah.UpdateTransactionRequest, photoFile *multipart.FileHeader) error
	RequestDelete(ctx context.Context, month string, id string) (string, time.Time, error)
	ConfirmDelete(ctx context.Context, month string, token string) error
	CancelDelete(ctx context.Context, token string) error
	ExportMonth(ctx context.Context, month string) (string, []byte, error)
}

type hibahService struct {
	log             *logrus.Logger
	hibahRepository hibahRepository.Repository
	s3              s3.ItfS3
	utils           utils.IUtils
	confirms        *confirm.Registry
}

func NewHibahService(log *logrus.Logger, hr hibahRepository.Repository, s3 s3.ItfS3, utils utils.IUtils, confirms *confirm.Registry) IHibahService {
	return &hibahService{
		log:             log,
		hibahRepository: hr,
		s3:              s3,
		utils:           utils,
		confirms:        confirms,
	}
}
