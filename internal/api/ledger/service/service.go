package ledgerService

import (
	"FinTrack/internal/api/ledger"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ILedgerService interface {
	CreateTransaction(ctx context.Context, req ledger.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactions(ctx context.Context, typeFilter string) ([]entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string)
	ResetTransactions(ctx context.Context)
}

type ledgerService struct {
	log              *logrus.Logger
	ledgerRepository ledgerRepository.Repository
	utils            utils.IUtils
}

func NewLedgerService(log *logrus.Logger, lr ledgerRepository.Repository, utils utils.IUtils) ILedgerService {
	return &ledgerService{
		log:              log,
		ledgerRepository: lr,
		utils:            utils,
	}
}
