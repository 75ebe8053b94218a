package config

import (
	"fmt"
	"os"

	authHandler "github.com/qistanaushaf/Adkeu/internal/api/auth/handler"
	authService "github.com/qistanaushaf/Adkeu/internal/api/auth/service"
	dashboardHandler "github.com/qistanaushaf/Adkeu/internal/api/dashboard/handler"
	dashboardRepository "github.com/qistanaushaf/Adkeu/internal/api/dashboard/repository"
	dashboardService "github.com/qistanaushaf/Adkeu/internal/api/dashboard/service"
	hibahHandler "github.com/qistanaushaf/Adkeu/internal/api/hibah/handler"
	hibahRepository "github.com/qistanaushaf/Adkeu/internal/api/hibah/repository"
	hibahService "github.com/qistanaushaf/Adkeu/internal/api/hibah/service"
	kasHandler "github.com/qistanaushaf/Adkeu/internal/api/kas/handler"
	kasRepository "github.com/qistanaushaf/Adkeu/internal/api/kas/repository"
	kasService "github.com/qistanaushaf/Adkeu/internal/api/kas/service"
	noncashHandler "github.com/qistanaushaf/Adkeu/internal/api/noncash/handler"
	noncashRepository "github.com/qistanaushaf/Adkeu/internal/api/noncash/repository"
	noncashService "github.com/qistanaushaf/Adkeu/internal/api/noncash/service"
	paguHandler "github.com/qistanaushaf/Adkeu/internal/api/pagu/handler"
	paguRepository "github.com/qistanaushaf/Adkeu/internal/api/pagu/repository"
	paguService "github.com/qistanaushaf/Adkeu/internal/api/pagu/service"
	"github.com/qistanaushaf/Adkeu/internal/middleware"
	"github.com/qistanaushaf/Adkeu/pkg/bcrypt"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/s3"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	kv          keyval.Store
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	confirms    *confirm.Registry
	handlers    []handler
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.kv == nil {
		return nil, fmt.Errorf("keyval store is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithKeyval selects the slot backend from DATA_BACKEND: redis (default),
// postgres, or memory for throwaway runs.
func WithKeyval() ServerOption {
	return func(s *Server) error {
		switch os.Getenv("DATA_BACKEND") {
		case "", "redis":
			s.kv = keyval.NewRedis()
		case "postgres":
			kv, err := keyval.NewPostgres()
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to connect to Postgres: %v", err)
				}
				return fmt.Errorf("failed to create Postgres store: %w", err)
			}
			s.kv = kv
		case "memory":
			s.kv = keyval.NewMemory()
		default:
			return fmt.Errorf("unknown DATA_BACKEND %q", os.Getenv("DATA_BACKEND"))
		}
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client is a no-op when the bucket env vars are absent; evidence
// photos then fall back to inline data URLs.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		if !s3.Configured() {
			if s.log != nil {
				s.log.Info("Object storage not configured, storing evidence inline")
			}
			return nil
		}

		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithConfirmRegistry() ServerOption {
	return func(s *Server) error {
		s.confirms = confirm.NewRegistry()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authServices := authService.NewAuthService(s.log, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Hibah Ledger
	hibahRepo := hibahRepository.New(s.kv, s.log)
	hibahServices := hibahService.NewHibahService(s.log, hibahRepo, s.s3Client, s.utils, s.confirms)
	hibahHandlers := hibahHandler.New(s.log, s.validator, s.middleware, hibahServices)

	// Kas Registry
	kasRepo := kasRepository.New(s.kv, s.log)
	kasServices := kasService.NewKasService(s.log, kasRepo, s.utils, s.confirms)
	kasHandlers := kasHandler.New(s.log, s.validator, s.middleware, kasServices)

	// Pagu Allocations
	paguRepo := paguRepository.New(s.kv, s.log)
	paguServices := paguService.NewPaguService(s.log, paguRepo, s.s3Client, s.utils, s.confirms)
	paguHandlers := paguHandler.New(s.log, s.validator, s.middleware, paguServices)

	// Non-cash Evidence
	noncashRepo := noncashRepository.New(s.kv, s.log)
	noncashServices := noncashService.NewNonCashService(s.log, noncashRepo, s.s3Client, s.utils, s.confirms)
	noncashHandlers := noncashHandler.New(s.log, s.validator, s.middleware, noncashServices)

	// Dashboard aggregates over the hibah and pagu snapshots
	dashboardRepo := dashboardRepository.New(s.kv, s.log)
	dashboardServices := dashboardService.NewDashboardService(s.log, dashboardRepo, hibahRepo, paguRepo)
	dashboardHandlers := dashboardHandler.New(s.log, s.validator, s.middleware, dashboardServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, hibahHandlers, kasHandlers, paguHandlers, noncashHandlers, dashboardHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
