package kasService

import (
	"time"

	kasRepository "github.com/qistanaushaf/Adkeu/internal/api/kas/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/qistanaushaf/Adkeu/internal/api/kas"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IKasService interface {
	GetRoster(ctx context.Context, divisi string, search string) (entity.DivisiKasContainer, error)
	AddMember(ctx context.Context, req kas.AddMemberRequest) (entity.MemberKas, error)
	UpdateName(ctx context.Context, id string, req kas.UpdateNameRequest) error
	TogglePayment(ctx context.Context, id string, req kas.ToggleRequest) error
	ToggleLate(ctx context.Context, id string, req kas.ToggleRequest) error
	RequestDelete(ctx context.Context, divisi string, id string) (string, time.Time, error)
	ConfirmDelete(ctx context.Context, divisi string, token string) error
	CancelDelete(ctx context.Context, token string) error
	FormLink() string
	CreateSubmission(ctx context.Context, req kas.CreateSubmissionRequest) (entity.FormSubmission, error)
	GetSubmissions(ctx context.Context) ([]entity.FormSubmission, error)
}

type kasService struct {
	log           *logrus.Logger
	kasRepository kasRepository.Repository
	utils         utils.IUtils
	confirms      *confirm.Registry
}

func NewKasService(log *logrus.Logger, kr kasRepository.Repository, utils utils.IUtils, confirms *confirm.Registry) IKasService {
	return &kasService{
		log:           log,
		kasRepository: kr,
		utils:         utils,
		confirms:      confirms,
	}
}
