package repositories

import (
	"context"
	"errors"
)

// ErrTxDone is returned when a transaction is used after Commit or Rollback.
var ErrTxDone = errors.New("transaction has already been committed or rolled back")

// Transactor opens units of work spanning the catalog and the order store.
type Transactor interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one unit of work. Writes made through Products and Orders become
// visible to other callers only after Commit. Rollback after Commit is a
// no-op, so callers may always defer it.
type Tx interface {
	Products() ProductStore
	Orders() OrderWriter
	Commit() error
	Rollback() error
}
