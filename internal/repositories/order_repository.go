package repositories

import (
	"context"

	"toko/internal/models"
)

// OrderWriter persists a new order together with its items.
type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
}

// OrderRepository defines the interface for order data access.
// GetAll returns orders in the order they were created.
type OrderRepository interface {
	OrderWriter
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}
