// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foundmoney/internal/domain/repository"
	"foundmoney/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for the GORM TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside one transaction. gorm rolls back when fn returns an
// error or panics and commits otherwise. fn's error is returned unwrapped so
// callers can still match domain errors.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories hands out repositories bound to a single transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f txRepositories) NewAnalyticsRepository() repository.AnalyticsRepository {
	return NewAnalyticsRepository(f.tx)
}
