package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card represents a stored credit card. Expiry is persisted as the
// last calendar day of the stated month so comparisons are uniform.
type Card struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Number      string          `gorm:"column:numero;size:16;not null" json:"numero"`
	PrintedName string          `gorm:"column:nome_impresso;size:100;not null" json:"nome_impresso"`
	Expiry      time.Time       `gorm:"column:validade;not null" json:"validade"`
	CVV         string          `gorm:"column:cvv;size:4;not null" json:"cvv"`
	Brand       string          `gorm:"column:bandeira;size:20;not null" json:"bandeira"`
	Kind        string          `gorm:"column:tipo;size:50" json:"tipo"`
	Balance     decimal.Decimal `gorm:"column:saldo;type:decimal(10,2);not null;default:0" json:"saldo"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (Card) TableName() string { return "cartoes" }

// CreateCardInput represents the input for registering a new card.
// Validade arrives as an MM/AAAA string and is normalized on create.
type CreateCardInput struct {
	Number      string          `json:"numero"`
	PrintedName string          `json:"nome_impresso"`
	Expiry      string          `json:"validade"`
	CVV         string          `json:"cvv"`
	Brand       string          `json:"bandeira"`
	Kind        string          `json:"tipo"`
	Balance     decimal.Decimal `json:"saldo"`
}

// BalanceInput represents a balance top-up amount. The pointer keeps
// an absent field apart from an explicit zero.
type BalanceInput struct {
	Balance *decimal.Decimal `json:"saldo"`
}
