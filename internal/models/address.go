package models

import "time"

// Address is a delivery address owned by a user.
type Address struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Street     string    `gorm:"column:logradouro;size:150;not null" json:"logradouro"`
	Complement string    `gorm:"column:complemento;size:100" json:"complemento"`
	District   string    `gorm:"column:bairro;size:100;not null" json:"bairro"`
	City       string    `gorm:"column:cidade;size:100;not null" json:"cidade"`
	State      string    `gorm:"column:uf;size:2;not null" json:"uf"`
	ZipCode    string    `gorm:"column:cep;size:8;not null" json:"cep"`
	Country    string    `gorm:"column:pais;size:50;not null;default:'Brasil'" json:"pais"`
	Kind       string    `gorm:"column:tipo;size:50" json:"tipo"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (Address) TableName() string { return "enderecos" }

// CreateAddressInput represents the input for creating or updating an address.
type CreateAddressInput struct {
	Street     string `json:"logradouro"`
	Complement string `json:"complemento"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"uf"`
	ZipCode    string `json:"cep"`
	Country    string `json:"pais"`
	Kind       string `json:"tipo"`
}
