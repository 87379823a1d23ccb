package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GORMTransactor opens database transactions.
type GORMTransactor struct {
	db *gorm.DB
}

// NewGORMTransactor creates a new instance of GORMTransactor.
func NewGORMTransactor(db *gorm.DB) *GORMTransactor {
	return &GORMTransactor{db: db}
}

// Begin starts a database transaction bound to ctx.
func (t *GORMTransactor) Begin(ctx context.Context) (Tx, error) {
	tx := t.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &gormTx{db: tx}, nil
}

type gormTx struct {
	db   *gorm.DB
	done bool
}

func (tx *gormTx) Products() ProductStore { return NewGORMProductRepository(tx.db) }

func (tx *gormTx) Orders() OrderWriter { return NewGORMOrderRepository(tx.db) }

func (tx *gormTx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	if err := tx.db.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (tx *gormTx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.done = true
	if err := tx.db.Rollback().Error; err != nil {
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}
	return nil
}
