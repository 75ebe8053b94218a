package paguHandler

import (
	paguService "github.com/qistanaushaf/Adkeu/internal/api/pagu/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PaguHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	paguService paguService.IPaguService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	paguService paguService.IPaguService,
) *PaguHandler {
	return &PaguHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		paguService: paguService,
	}
}

func (h *PaguHandler) Start(srv fiber.Router) {
	pagu := srv.Group("/pagu")

	pagu.Get("/entries", h.GetEntries)
	pagu.Get("/budget", h.GetBudget)
	pagu.Post("/entries", h.middleware.NewAdminMiddleware, h.CreateEntry)
	pagu.Put("/entries/:id", h.middleware.NewAdminMiddleware, h.UpdateEntry)
	pagu.Post("/entries/:id/delete-request", h.middleware.NewAdminMiddleware, h.RequestDelete)
	pagu.Post("/entries/delete-confirm", h.middleware.NewAdminMiddleware, h.ConfirmDelete)
	pagu.Post("/entries/delete-cancel", h.middleware.NewAdminMiddleware, h.CancelDelete)
	pagu.Put("/budget", h.middleware.NewAdminMiddleware, h.SetBudget)
}
