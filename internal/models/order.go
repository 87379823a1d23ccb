package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// OrderStatusConfirmed is the only status assigned on creation.
const OrderStatusConfirmed OrderStatus = "confirmed"

// ProductSnapshot is the read-only copy of a product an order item was priced
// against. It is stored alongside the item and never refreshed.
type ProductSnapshot struct {
	ID    string          `json:"id" gorm:"type:varchar(36);not null;index"`
	Name  string          `json:"name" gorm:"type:varchar(100);not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
}

// OrderItem represents a single line within an order.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string          `json:"-" gorm:"type:varchar(36);not null;index"`
	Product   ProductSnapshot `json:"product" gorm:"embedded;embeddedPrefix:product_"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	LineTotal decimal.Decimal `json:"line_total" gorm:"type:decimal(14,2);not null"`
}

// NewOrderItem prices quantity units of product. The line total is computed
// here once and not recomputed afterwards.
func NewOrderItem(product Product, quantity int) OrderItem {
	return OrderItem{
		Product:   product.Snapshot(),
		Quantity:  quantity,
		LineTotal: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Order represents a customer order. It owns its items exclusively.
type Order struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName   string          `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail  string          `json:"customer_email" gorm:"type:varchar(255);not null"`
	Items          []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(14,2);not null"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(14,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(14,2);not null"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItemRequest is one requested line of a CreateOrderRequest.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the input of the order creation workflow.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerEmail string             `json:"customer_email" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}
