package kasHandler

import (
	kasService "github.com/qistanaushaf/Adkeu/internal/api/kas/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type KasHandler struct {
	log        *logrus.Logger
	validator  *validator.Validate
	middleware middleware.Middleware
	kasService kasService.IKasService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	kasService kasService.IKasService,
) *KasHandler {
	return &KasHandler{
		log:        log,
		validator:  validate,
		middleware: middleware,
		kasService: kasService,
	}
}

func (h *KasHandler) Start(srv fiber.Router) {
	kas := srv.Group("/kas")

	kas.Get("/divisions", h.GetDivisions)
	kas.Get("/members", h.GetRoster)
	kas.Get("/form-link", h.GetFormLink)
	kas.Get("/submissions", h.GetSubmissions)
	kas.Post("/submissions", h.CreateSubmission)
	kas.Post("/members", h.middleware.NewAdminMiddleware, h.AddMember)
	kas.Patch("/members/:id/name", h.middleware.NewAdminMiddleware, h.UpdateName)
	kas.Post("/members/:id/payments/toggle", h.middleware.NewAdminMiddleware, h.TogglePayment)
	kas.Post("/members/:id/late/toggle", h.middleware.NewAdminMiddleware, h.ToggleLate)
	kas.Post("/members/:id/delete-request", h.middleware.NewAdminMiddleware, h.RequestDelete)
	kas.Post("/members/delete-confirm", h.middleware.NewAdminMiddleware, h.ConfirmDelete)
	kas.Post("/members/delete-cancel", h.middleware.NewAdminMiddleware, h.CancelDelete)
}
