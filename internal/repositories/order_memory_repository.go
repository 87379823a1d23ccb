package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"toko/internal/models"

	"github.com/google/uuid"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders map[string]models.Order
	ids    []string // creation order
	mu     sync.RWMutex
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders in creation order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orderList = append(orderList, cloneOrder(r.orders[id]))
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *InMemoryOrderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order = cloneOrder(order)
	return &order, nil
}

// Create adds a new order.
func (r *InMemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	prepareOrder(order, time.Now())
	return r.insert([]models.Order{cloneOrder(*order)})
}

func (r *InMemoryOrderRepository) insert(orders []models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range orders {
		if _, exists := r.orders[o.ID]; exists {
			return fmt.Errorf("order with ID %s already exists", o.ID)
		}
	}
	for _, o := range orders {
		r.orders[o.ID] = o
		r.ids = append(r.ids, o.ID)
	}
	return nil
}

// prepareOrder assigns the fields a store sets on insert.
func prepareOrder(order *models.Order, now time.Time) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		order.Items[i].ID = uint(i + 1)
		order.Items[i].OrderID = order.ID
	}
}

// cloneOrder copies o so callers never share its item slice with the store.
func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o
}
