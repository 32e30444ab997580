// Package order creates purchase orders. The product name is resolved
// from the catalog at creation time and denormalized into the row.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/repositories/catalog"
)

// FallbackProductName is recorded when the catalog has no document for
// the requested product id. The order is still created.
const FallbackProductName = "Produto não encontrado"

// DefaultStatus is used when the caller does not supply one.
const DefaultStatus = "Confirmado"

// Catalog is the slice of the product store the service needs.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// Service creates orders.
type Service interface {
	Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
}

type service struct {
	users   repositories.UserRepository
	orders  repositories.OrderRepository
	catalog Catalog
	now     func() time.Time
}

// NewService creates the order service.
func NewService(users repositories.UserRepository, orders repositories.OrderRepository, products Catalog) Service {
	if users == nil {
		panic("user repository is required")
	}
	if orders == nil {
		panic("order repository is required")
	}
	if products == nil {
		panic("catalog is required")
	}
	return &service{users: users, orders: orders, catalog: products, now: time.Now}
}

func (s *service) Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	user, err := s.users.GetByID(input.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	productName := FallbackProductName
	product, err := s.catalog.GetByID(ctx, input.ProductID)
	switch {
	case err == nil:
		productName = product.Name
	case errors.Is(err, catalog.ErrProductNotFound):
		// Keep the placeholder name; a catalog miss does not fail the order.
	default:
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	orderDate := s.now().UTC().Truncate(24 * time.Hour)
	if input.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", input.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("invalid order date %q: %w", input.OrderDate, err)
		}
		orderDate = parsed
	}

	status := input.Status
	if status == "" {
		status = DefaultStatus
	}

	order := &models.Order{
		CustomerName: user.Name,
		ProductName:  productName,
		OrderDate:    orderDate,
		Total:        input.Total,
		Status:       status,
		UserID:       input.UserID,
		CardID:       input.CardID,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}
