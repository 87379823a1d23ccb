package repositories

import (
	"context"
	"errors"

	"toko/internal/models"
)

// ErrNotFound is wrapped by every repository lookup that finds nothing.
var ErrNotFound = errors.New("record not found")

// ProductStore is the part of the catalog the order workflow needs: read a
// product and save it back after deducting stock.
type ProductStore interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	ProductStore
	GetAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
