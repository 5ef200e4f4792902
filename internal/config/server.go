package config

import (
	analyticsHandler "FinTrack/internal/api/analytics/handler"
	analyticsService "FinTrack/internal/api/analytics/service"
	budgetHandler "FinTrack/internal/api/budget/handler"
	budgetRepository "FinTrack/internal/api/budget/repository"
	budgetService "FinTrack/internal/api/budget/service"
	insightHandler "FinTrack/internal/api/insight/handler"
	insightService "FinTrack/internal/api/insight/service"
	ledgerHandler "FinTrack/internal/api/ledger/handler"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	ledgerService "FinTrack/internal/api/ledger/service"
	"FinTrack/internal/middleware"
	"FinTrack/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	cfg        *Config
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	redis      *redis.Client
	handlers   []handler
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
	if server.cfg == nil {
		return nil, fmt.Errorf("config is required")
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

func WithConfig(cfg *Config) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithRedis() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before redis")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     s.cfg.Redis.Address,
			Password: s.cfg.Redis.Password,
			DB:       s.cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := client.Ping(ctx).Result(); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to Redis: %v", err)
			}
		} else if s.log != nil {
			s.log.Info("Successfully connected to Redis")
		}

		s.redis = client
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

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Ledger Domain
	ledgerRepo := ledgerRepository.New(s.log)
	ledgerServices := ledgerService.NewLedgerService(s.log, ledgerRepo, s.utils)
	ledgerHandlers := ledgerHandler.New(s.log, s.validator, s.middleware, ledgerServices)

	// Analytics
	analyticsServices := analyticsService.NewAnalyticsService(s.log, ledgerRepo)
	analyticsHandlers := analyticsHandler.New(s.log, s.validator, s.middleware, analyticsServices)

	// Budget Settings
	budgetRepo := budgetRepository.New(s.redis, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, ledgerRepo)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Insights
	insightServices := insightService.NewInsightService(s.log, ledgerRepo, budgetRepo)
	insightHandlers := insightHandler.New(s.log, s.middleware, insightServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, ledgerHandlers, analyticsHandlers, budgetHandlers, insightHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", s.cfg.AppPort))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
