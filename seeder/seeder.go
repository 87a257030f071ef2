package seeder

import (
	"context"

	"bitbucket.org/nileloom/bagops_backend/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder populates the ops tables from a Fixture. One Run is one
// transaction: either every record lands or none do. Re-running the
// same fixture is idempotent for every table (orders by their
// documented weak identity key, see seedOrders).
type Seeder struct {
	db    *gorm.DB
	log   *logrus.Logger
	runID string
}

func New(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{db: db, log: log, runID: uuid.NewString()}
}

// Run executes the batch in dependency order: reference tables first,
// then SKUs and finished-goods balances, fabric materials and fabric
// balances, orders, expenses. Any error aborts the whole run; gorm
// rolls the transaction back on return.
func (s *Seeder) Run(ctx context.Context, fx *Fixture) error {
	logger := s.log.WithField("run_id", s.runID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			fn   func(*gorm.DB, *Fixture) error
		}{
			{"reference", s.seedReference},
			{"skus_and_inventory", s.seedSKUsAndInventory},
			{"fabrics", s.seedFabrics},
			{"orders", s.seedOrders},
			{"expenses", s.seedExpenses},
		}
		for _, step := range steps {
			if err := step.fn(tx, fx); err != nil {
				config.LogError(s.log, "seeder", step.name, s.runID, nil, err)
				return err
			}
			logger.WithField("step", step.name).Info("seed step completed")
		}
		return nil
	})
}
