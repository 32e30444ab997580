package handlers

import (
	"errors"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users repositories.UserRepository
}

func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List()
	if err != nil {
		return response.ServerError(c, "Erro ao listar usuários")
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	user, err := h.users.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar usuário")
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	v := validation.New()
	v.Check(input.Name != "" && input.Email != "", "usuario", "Nome e email são obrigatórios")
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		BirthDate: input.BirthDate,
		Phone:     input.Phone,
	}
	if input.CPF != "" {
		cpf := validation.Digits(input.CPF)
		user.CPF = &cpf
	}
	if err := h.users.Create(user); err != nil {
		return response.ServerError(c, "Erro ao salvar usuário no banco de dados")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	user, err := h.users.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar usuário")
	}

	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.BirthDate != "" {
		user.BirthDate = input.BirthDate
	}
	if input.CPF != "" {
		cpf := validation.Digits(input.CPF)
		user.CPF = &cpf
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := h.users.Update(user); err != nil {
		return response.ServerError(c, "Erro ao atualizar usuário")
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.users.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao deletar usuário")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
