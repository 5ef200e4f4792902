package budgetRepository

import (
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	keyMonthlyBudget = "budget:monthly"
	keyAlertEnabled  = "budget:alert_enabled"
)

// Repository is the persistence collaborator for budget settings. The core
// never owns these values; they are written through here and survive the
// session, unlike the ledger.
type Repository interface {
	GetMonthlyBudget(ctx context.Context) (*float64, error)
	SetMonthlyBudget(ctx context.Context, amount float64) error
	GetAlertEnabled(ctx context.Context) (bool, error)
	SetAlertEnabled(ctx context.Context, enabled bool) error
}

type repository struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(client *redis.Client, log *logrus.Logger) Repository {
	return &repository{
		client: client,
		log:    log,
	}
}

// GetMonthlyBudget returns nil when no budget has been set yet.
func (r *repository) GetMonthlyBudget(ctx context.Context) (*float64, error) {
	val, err := r.client.Get(ctx, keyMonthlyBudget).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to read monthly budget")
		return nil, err
	}

	amount, err := strconv.ParseFloat(val, 64)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"value": val,
			"error": err.Error(),
		}).Error("Corrupt monthly budget value")
		return nil, err
	}

	return &amount, nil
}

func (r *repository) SetMonthlyBudget(ctx context.Context, amount float64) error {
	if err := r.client.Set(ctx, keyMonthlyBudget, strconv.FormatFloat(amount, 'f', -1, 64), 0).Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to save monthly budget")
		return err
	}
	return nil
}

// GetAlertEnabled defaults to true when the flag was never stored.
func (r *repository) GetAlertEnabled(ctx context.Context) (bool, error) {
	val, err := r.client.Get(ctx, keyAlertEnabled).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to read budget alert flag")
		return false, err
	}

	return val == "true", nil
}

func (r *repository) SetAlertEnabled(ctx context.Context, enabled bool) error {
	if err := r.client.Set(ctx, keyAlertEnabled, strconv.FormatBool(enabled), 0).Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to save budget alert flag")
		return err
	}
	return nil
}
