package ledgerHandler

import (
	ledgerService "FinTrack/internal/api/ledger/service"
	"FinTrack/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LedgerHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	ledgerService ledgerService.ILedgerService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ledgerService ledgerService.ILedgerService,
) *LedgerHandler {
	return &LedgerHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		ledgerService: ledgerService,
	}
}

func (h *LedgerHandler) Start(srv fiber.Router) {
	ledger := srv.Group("/ledger")

	ledger.Post("/transactions", h.middleware.NewRateLimiter, h.CreateTransaction)
	ledger.Get("/transactions", h.GetTransactions)
	ledger.Delete("/transactions/:id", h.DeleteTransaction)
	ledger.Delete("/transactions", h.ResetTransactions)
}
