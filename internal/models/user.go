package models

import "time"

// User is a store customer. Column and JSON names follow the
// Portuguese wire contract of the public API. CPF is optional and
// unique when present; a nil CPF stores NULL so absent values never
// collide on the index.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Email     string    `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	BirthDate string    `gorm:"column:dt_nascimento;size:10" json:"dt_nascimento"`
	CPF       *string   `gorm:"column:cpf;size:11;uniqueIndex" json:"cpf"`
	Phone     string    `gorm:"column:telefone;size:20" json:"telefone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "usuarios" }

// CreateUserInput represents the input for creating or updating a user.
type CreateUserInput struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	BirthDate string `json:"dt_nascimento"`
	CPF       string `json:"cpf"`
	Phone     string `json:"telefone"`
}
