package noncashHandler

import (
	noncashService "github.com/qistanaushaf/Adkeu/internal/api/noncash/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NonCashHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	noncashService noncashService.INonCashService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	noncashService noncashService.INonCashService,
) *NonCashHandler {
	return &NonCashHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		noncashService: noncashService,
	}
}

func (h *NonCashHandler) Start(srv fiber.Router) {
	noncash := srv.Group("/noncash")

	noncash.Get("/evidence", h.GetEvidence)
	noncash.Post("/evidence", h.middleware.NewAdminMiddleware, h.UploadEvidence)
	noncash.Patch("/evidence/:id/title", h.middleware.NewAdminMiddleware, h.UpdateTitle)
	noncash.Post("/evidence/:id/delete-request", h.middleware.NewAdminMiddleware, h.RequestDelete)
	noncash.Post("/evidence/delete-confirm", h.middleware.NewAdminMiddleware, h.ConfirmDelete)
	noncash.Post("/evidence/delete-cancel", h.middleware.NewAdminMiddleware, h.CancelDelete)
}
