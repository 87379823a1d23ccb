package services

import (
	"context"
	"errors"
	"fmt"

	"toko/internal/models"
	"toko/internal/repositories"
	"toko/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validation.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateProductErr(id, err)
	}
	return product, nil
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.validate.StructCtx(ctx, product); err != nil {
		return &ValidationError{Fields: validation.FieldErrors(err)}
	}
	return s.repo.Create(ctx, product)
}

// UpdateProduct validates and replaces an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := s.validate.StructCtx(ctx, product); err != nil {
		return &ValidationError{Fields: validation.FieldErrors(err)}
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return translateProductErr(product.ID, err)
	}
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateProductErr(id, err)
	}
	return nil
}

func translateProductErr(id string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &ProductNotFoundError{ProductID: id}
	}
	return fmt.Errorf("product %s: %w", id, err)
}
