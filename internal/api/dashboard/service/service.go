package dashboardService

import (
	dashboardRepository "github.com/qistanaushaf/Adkeu/internal/api/dashboard/repository"
	hibahRepository "github.com/qistanaushaf/Adkeu/internal/api/hibah/repository"
	paguRepository "github.com/qistanaushaf/Adkeu/internal/api/pagu/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"

	"github.com/qistanaushaf/Adkeu/internal/api/dashboard"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IDashboardService interface {
	GetSummary(ctx context.Context, month string) (dashboard.SummaryResponse, error)
	GetCharts(ctx context.Context) (dashboard.ChartsResponse, error)
	GetTheme(ctx context.Context) (entity.Theme, error)
	SetTheme(ctx context.Context, theme string) error
}

type dashboardService struct {
	log                 *logrus.Logger
	dashboardRepository dashboardRepository.Repository
	hibahRepository     hibahRepository.Repository
	paguRepository      paguRepository.Repository
}

func NewDashboardService(
	log *logrus.Logger,
	dr dashboardRepository.Repository,
	hr hibahRepository.Repository,
	pr paguRepository.Repository,
) IDashboardService {
	return &dashboardService{
		log:                 log,
		dashboardRepository: dr,
		hibahRepository:     hr,
		paguRepository:      pr,
	}
}
