package insightService

import (
	budgetRepository "FinTrack/internal/api/budget/repository"
	"FinTrack/internal/api/insight"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IInsightService interface {
	GetInsights(ctx context.Context, reference time.Time) (insight.InsightsResponse, error)
}

type insightService struct {
	log              *logrus.Logger
	ledgerRepository ledgerRepository.Repository
	budgetRepository budgetRepository.Repository
}

func NewInsightService(log *logrus.Logger, lr ledgerRepository.Repository, br budgetRepository.Repository) IInsightService {
	return &insightService{
		log:              log,
		ledgerRepository: lr,
		budgetRepository: br,
	}
}
