package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a confirmed purchase. The product name is denormalized at
// creation time from the catalog.
type Order struct {
	ID           uint            `gorm:"column:id_pedido;primarykey" json:"id_pedido"`
	CustomerName string          `gorm:"column:nome_cliente;size:50;not null" json:"nome_cliente"`
	ProductName  string          `gorm:"column:nome_produto;size:100;not null" json:"nome_produto"`
	OrderDate    time.Time       `gorm:"column:data_pedido;not null" json:"data_pedido"`
	Total        decimal.Decimal `gorm:"column:valor_total;type:decimal(10,2);not null" json:"valor_total"`
	Status       string          `gorm:"column:status;size:20;not null" json:"status"`
	UserID       uint            `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	CardID       uint            `gorm:"column:id_cartao;not null;index" json:"id_cartao"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

func (Order) TableName() string { return "pedidos" }

// CreateOrderInput represents the input for creating an order.
type CreateOrderInput struct {
	UserID    uint            `json:"id_usuario"`
	ProductID string          `json:"id_produto"`
	Total     decimal.Decimal `json:"valor_total"`
	CardID    uint            `json:"id_cartao"`
	OrderDate string          `json:"data_pedido"`
	Status    string          `json:"status"`
}

// UpdateOrderInput represents the mutable fields of an order.
type UpdateOrderInput struct {
	CustomerName string           `json:"nome_cliente"`
	ProductName  string           `json:"nome_produto"`
	OrderDate    string           `json:"data_pedido"`
	Total        *decimal.Decimal `json:"valor_total"`
	Status       string           `json:"status"`
}
