package dashboardHandler

import (
	dashboardService "github.com/qistanaushaf/Adkeu/internal/api/dashboard/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	board := srv.Group("/dashboard")

	board.Get("/summary", h.GetSummary)
	board.Get("/charts", h.GetCharts)
	board.Get("/theme", h.GetTheme)
	board.Put("/theme", h.SetTheme)
}
