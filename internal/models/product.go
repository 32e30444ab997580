package models

import "github.com/shopspring/decimal"

// Product is a catalog document. It lives in the document store, not
// in Postgres; Category is the partition key.
type Product struct {
	ID          string          `json:"id"`
	Category    string          `json:"produtoCategoria"`
	Name        string          `json:"nome"`
	Price       decimal.Decimal `json:"preco"`
	ImageURL    string          `json:"urlImagem"`
	Description string          `json:"descricao"`
}

// CreateProductInput represents the input for creating or updating a product.
type CreateProductInput struct {
	Category    string          `json:"produtoCategoria"`
	Name        string          `json:"nome"`
	Price       decimal.Decimal `json:"preco"`
	ImageURL    string          `json:"urlImagem"`
	Description string          `json:"descricao"`
}
