package repositories

import (
	"errors"
	"fmt"

	"mall/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	ListByCustomerName(name string) ([]models.Order, error)
	ListByCard(cardID uint) ([]models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomerName(name string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("nome_cliente ILIKE ?", "%"+name+"%").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by customer: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListByCard(cardID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("id_cartao = ?", cardID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by card: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) Update(order *models.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
