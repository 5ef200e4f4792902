package ledgerRepository

import (
	"FinTrack/internal/entity"
	"sync"

	"github.com/sirupsen/logrus"
)

// Repository owns the session ledger. The collection lives only for the
// lifetime of the process; records are kept newest first and are never
// mutated after insertion.
type Repository interface {
	Insert(transaction entity.Transaction)
	Delete(id string) bool
	Reset()
	List() []entity.Transaction
	ListByType(transactionType entity.TransactionType) []entity.Transaction
}

func New(log *logrus.Logger) Repository {
	return &repository{
		log: log,
	}
}

type repository struct {
	mu           sync.RWMutex
	transactions []entity.Transaction
	log          *logrus.Logger
}

func (r *repository) Insert(transaction entity.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append([]entity.Transaction{transaction}, r.transactions...)
}

func (r *repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, transaction := range r.transactions {
		if transaction.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return true
		}
	}

	return false
}

func (r *repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.transactions)
	r.transactions = nil

	r.log.WithFields(logrus.Fields{
		"deleted": count,
	}).Debug("Ledger reset")
}

// List returns a snapshot copy; callers cannot reach the internal slice.
func (r *repository) List() []entity.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]entity.Transaction, len(r.transactions))
	copy(snapshot, r.transactions)

	return snapshot
}

func (r *repository) ListByType(transactionType entity.TransactionType) []entity.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]entity.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		if transaction.Type == transactionType {
			filtered = append(filtered, transaction)
		}
	}

	return filtered
}
