package analyticsHandler

import (
	analyticsService "FinTrack/internal/api/analytics/service"
	"FinTrack/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	analyticsService analyticsService.IAnalyticsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	analyticsService analyticsService.IAnalyticsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Start(srv fiber.Router) {
	analytics := srv.Group("/analytics")

	analytics.Get("/summary", h.GetSummary)
	analytics.Get("/breakdown", h.GetCategoryBreakdown)
	analytics.Get("/sources", h.GetIncomeBySource)
	analytics.Get("/comparison", h.GetMonthlyComparison)
	analytics.Get("/daily", h.GetDailySeries)
	analytics.Get("/weekly", h.GetWeeklySeries)
}
