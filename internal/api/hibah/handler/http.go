package hibahHandler

import (
	hibahService "github.com/qistanaushaf/Adkeu/internal/api/hibah/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HibahHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	hibahService hibahService.IHibahService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	hibahService hibahService.IHibahService,
) *HibahHandler {
	return &HibahHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		hibahService: hibahService,
	}
}

func (h *HibahHandler) Start(srv fiber.Router) {
	hibah := srv.Group("/hibah")

	hibah.Get("/months", h.GetLedger)
	hibah.Get("/months/:month/transactions", h.GetMonthTransactions)
	hibah.Get("/months/:month/export", h.ExportMonth)
	hibah.Post("/months/:month/transactions", h.middleware.NewAdminMiddleware, h.CreateTransaction)
	hibah.Put("/months/:month/transactions/:id", h.middleware.NewAdminMiddleware, h.UpdateTransaction)
	hibah.Post("/months/:month/transactions/:id/delete-request", h.middleware.NewAdminMiddleware, h.RequestDelete)
	hibah.Post("/months/:month/transactions/delete-confirm", h.middleware.NewAdminMiddleware, h.ConfirmDelete)
	hibah.Post("/months/:month/transactions/delete-cancel", h.middleware.NewAdminMiddleware, h.CancelDelete)
}
