package noncashService

import (
	"mime/multipart"
	"time"

	noncashRepository "github.com/qistanaushaf/Adkeu/internal/api/noncash/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/s3"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type INonCashService interface {
	GetEvidence(ctx context.Context, month string) ([]entity.NonCashEvidence, error)
	UploadEvidence(ctx context.Context, month string, title string, imageFile *multipart.FileHeader) (entity.NonCashEvidence, error)
	UpdateTitle(ctx context.Context, id string, title string) error
	RequestDelete(ctx context.Context, id string) (string, time.Time, error)
	ConfirmDelete(ctx context.Context, token string) error
	CancelDelete(ctx context.Context, token string) error
}

type noncashService struct {
	log               *logrus.Logger
	noncashRepository noncashRepository.Repository
	s3                s3.ItfS3
	utils             utils.IUtils
	confirms          *confirm.Registry
}

func NewNonCashService(log *logrus.Logger, nr noncashRepository.Repository, s3 s3.ItfS3, utils utils.IUtils, confirms *confirm.Registry) INonCashService {
	return &noncashService{
		log:               log,
		noncashRepository: nr,
		s3:                s3,
		utils:             utils,
		confirms:          confirms,
	}
}
