package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"toko/internal/models"
)

// MemoryTransactor runs units of work against the in-memory repositories.
// Only one unit of work is open at a time; Begin blocks until the previous
// one commits or rolls back.
type MemoryTransactor struct {
	mu       sync.Mutex
	products *InMemoryProductRepository
	orders   *InMemoryOrderRepository
}

// NewMemoryTransactor creates a transactor over the given repositories.
func NewMemoryTransactor(products *InMemoryProductRepository, orders *InMemoryOrderRepository) *MemoryTransactor {
	return &MemoryTransactor{
		products: products,
		orders:   orders,
	}
}

// Begin opens a unit of work.
func (t *MemoryTransactor) Begin(ctx context.Context) (Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	return &memoryTx{
		owner:    t,
		products: make(map[string]models.Product),
	}, nil
}

// memoryTx buffers writes until Commit.
type memoryTx struct {
	owner    *MemoryTransactor
	products map[string]models.Product
	orders   []models.Order
	done     bool
}

func (tx *memoryTx) Products() ProductStore { return (*memoryTxProducts)(tx) }

func (tx *memoryTx) Orders() OrderWriter { return (*memoryTxOrders)(tx) }

func (tx *memoryTx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	defer tx.finish()

	if err := tx.owner.orders.insert(tx.orders); err != nil {
		return fmt.Errorf("commit orders: %w", err)
	}
	tx.owner.products.replaceExisting(tx.products)
	return nil
}

func (tx *memoryTx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.finish()
	return nil
}

func (tx *memoryTx) finish() {
	tx.done = true
	tx.products = nil
	tx.orders = nil
	tx.owner.mu.Unlock()
}

type memoryTxProducts memoryTx

// GetByID sees products staged earlier in the same unit of work first.
func (p *memoryTxProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p.done {
		return nil, ErrTxDone
	}
	if staged, ok := p.products[id]; ok {
		return &staged, nil
	}
	return p.owner.products.GetByID(ctx, id)
}

func (p *memoryTxProducts) Update(ctx context.Context, product *models.Product) error {
	if p.done {
		return ErrTxDone
	}
	existing, err := p.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	p.products[product.ID] = *product
	return nil
}

type memoryTxOrders memoryTx

func (o *memoryTxOrders) Create(_ context.Context, order *models.Order) error {
	if o.done {
		return ErrTxDone
	}
	prepareOrder(order, time.Now())
	o.orders = append(o.orders, cloneOrder(*order))
	return nil
}
