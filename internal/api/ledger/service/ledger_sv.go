package ledgerService

import (
	"FinTrack/internal/api/ledger"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *ledgerService) CreateTransaction(ctx context.Context, req ledger.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(req.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid transaction type")
		return entity.Transaction{}, ledger.ErrInvalidTransactionType
	}

	date, err := parseTransactionDate(req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return entity.Transaction{}, ledger.ErrInvalidDate
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	transaction := entity.Transaction{
		ID:          ULID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	transaction.ApplyDefaults()

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	s.ledgerRepository.Insert(transaction)

	return transaction, nil
}

func (s *ledgerService) GetTransactions(ctx context.Context, typeFilter string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if typeFilter == "" {
		return s.ledgerRepository.List(), nil
	}

	if !entity.IsValidTransactionType(typeFilter) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       typeFilter,
		}).Warn("Invalid transaction type filter")
		return nil, ledger.ErrInvalidTypeFilter
	}

	return s.ledgerRepository.ListByType(entity.TransactionType(typeFilter)), nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, id string) {
	requestID := contextPkg.GetRequestID(ctx)

	// Deleting an absent id is a no-op, not an error.
	if !s.ledgerRepository.Delete(id) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Debug("Delete requested for unknown transaction id")
	}
}

func (s *ledgerService) ResetTransactions(ctx context.Context) {
	requestID := contextPkg.GetRequestID(ctx)

	s.ledgerRepository.Reset()

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("All transactions cleared")
}

// parseTransactionDate accepts the client's ISO-8601 date-time or bare date.
// An empty date means "now".
func parseTransactionDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}

	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}

	return time.Parse("2006-01-02", raw)
}
