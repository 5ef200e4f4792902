package budgetService

import (
	"FinTrack/internal/api/budget"
	budgetRepository "FinTrack/internal/api/budget/repository"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	GetSettings(ctx context.Context) (budget.SettingsResponse, error)
	SetMonthlyBudget(ctx context.Context, req budget.UpdateBudgetRequest) error
	SetAlertEnabled(ctx context.Context, enabled bool) error
	GetStatus(ctx context.Context, reference time.Time) (budget.StatusResponse, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	ledgerRepository ledgerRepository.Repository
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, lr ledgerRepository.Repository) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		ledgerRepository: lr,
	}
}
