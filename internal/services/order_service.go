package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"toko/internal/metrics"
	"toko/internal/models"
	"toko/internal/pricing"
	"toko/internal/repositories"
	"toko/internal/validation"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	transactor repositories.Transactor
	orderRepo  repositories.OrderRepository
	validate   *validator.Validate
	metrics    *metrics.OrderMetrics
	logger     *log.Entry
}

// NewOrderService creates a new OrderService. Writes go through transactor;
// reads go straight to orderRepo. m and logger may be nil.
func NewOrderService(transactor repositories.Transactor, orderRepo repositories.OrderRepository, m *metrics.OrderMetrics, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &OrderService{
		transactor: transactor,
		orderRepo:  orderRepo,
		validate:   validation.New(),
		metrics:    m,
		logger:     logger.WithField("component", "order_service"),
	}
}

// GetAllOrders retrieves all orders, oldest first.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return order, nil
}

// CreateOrder validates req, deducts stock for every line, prices the order
// and persists it, all in one transaction. On any error nothing is written.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	start := time.Now()

	order, err := s.createOrder(ctx, req)
	if err != nil {
		reason := failureReason(err)
		s.metrics.RecordFailed(reason, time.Since(start))
		entry := s.logger.WithError(err).WithField("reason", reason)
		if reason == metrics.ReasonInternal {
			entry.Error("order creation failed")
		} else {
			entry.Info("order rejected")
		}
		return nil, err
	}

	discounted := order.DiscountAmount.IsPositive()
	s.metrics.RecordCreated(discounted, time.Since(start))
	s.logger.WithFields(log.Fields{
		"order_id":   order.ID,
		"items":      len(order.Items),
		"total":      order.TotalAmount.String(),
		"discounted": discounted,
	}).Info("order created")
	return order, nil
}

func (s *OrderService) createOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, &ValidationError{Fields: validation.FieldErrors(err)}
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start order transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.WithError(rbErr).Warn("rollback failed")
		}
	}()

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := reserveLine(ctx, tx.Products(), line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		Status:        models.OrderStatusConfirmed,
	}
	quote := pricing.Quote(order.Items)
	order.Subtotal = quote.Subtotal
	order.DiscountAmount = quote.Discount
	order.TotalAmount = quote.Total

	if err := tx.Orders().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return order, nil
}

// reserveLine deducts line.Quantity from the product's stock and returns the
// priced item. The saved stock is visible to later lines of the same order.
func reserveLine(ctx context.Context, products repositories.ProductStore, line models.OrderItemRequest) (models.OrderItem, error) {
	product, err := products.GetByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.OrderItem{}, &ProductNotFoundError{ProductID: line.ProductID}
		}
		return models.OrderItem{}, fmt.Errorf("failed to load product %s: %w", line.ProductID, err)
	}

	if product.Stock < line.Quantity {
		return models.OrderItem{}, &InsufficientStockError{
			ProductName: product.Name,
			Requested:   line.Quantity,
			Available:   product.Stock,
		}
	}

	product.Stock -= line.Quantity
	if err := products.Update(ctx, product); err != nil {
		return models.OrderItem{}, fmt.Errorf("failed to update stock for product %s: %w", product.ID, err)
	}
	return models.NewOrderItem(*product, line.Quantity), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return metrics.ReasonInvalidRequest
	case errors.Is(err, ErrProductNotFound):
		return metrics.ReasonProductNotFound
	case errors.Is(err, ErrInsufficientStock):
		return metrics.ReasonInsufficientStock
	default:
		return metrics.ReasonInternal
	}
}
