package budgetHandler

import (
	budgetService "FinTrack/internal/api/budget/service"
	"FinTrack/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budget := srv.Group("/budget")

	budget.Get("/", h.GetSettings)
	budget.Put("/", h.SetMonthlyBudget)
	budget.Put("/alert", h.SetAlertEnabled)
	budget.Get("/status", h.GetStatus)
}
