package handlers

import (
	"errors"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	addresses repositories.AddressRepository
	users     repositories.UserRepository
}

func NewAddressHandler(addresses repositories.AddressRepository, users repositories.UserRepository) *AddressHandler {
	return &AddressHandler{addresses: addresses, users: users}
}

func (h *AddressHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if _, err := h.users.GetByID(uint(userID)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar usuário")
	}

	addresses, err := h.addresses.ListByUser(uint(userID))
	if err != nil {
		return response.ServerError(c, "Erro ao listar endereços")
	}
	return c.JSON(addresses)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if _, err := h.users.GetByID(uint(userID)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar usuário")
	}

	var input models.CreateAddressInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	v := validation.New()
	v.Required("logradouro", input.Street)
	v.Required("bairro", input.District)
	v.Required("cidade", input.City)
	v.Required("uf", input.State)
	v.Required("cep", input.ZipCode)
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	country := input.Country
	if country == "" {
		country = "Brasil"
	}

	address := &models.Address{
		UserID:     uint(userID),
		Street:     input.Street,
		Complement: input.Complement,
		District:   input.District,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
		Country:    country,
		Kind:       input.Kind,
	}
	if err := h.addresses.Create(address); err != nil {
		return response.ServerError(c, "Erro ao criar endereço")
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	address, err := h.addresses.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrAddressNotFound) {
			return response.NotFound(c, "Endereço não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar endereço")
	}

	var input models.CreateAddressInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	if input.Street != "" {
		address.Street = input.Street
	}
	if input.Complement != "" {
		address.Complement = input.Complement
	}
	if input.District != "" {
		address.District = input.District
	}
	if input.City != "" {
		address.City = input.City
	}
	if input.State != "" {
		address.State = input.State
	}
	if input.ZipCode != "" {
		address.ZipCode = input.ZipCode
	}
	if input.Country != "" {
		address.Country = input.Country
	}
	if input.Kind != "" {
		address.Kind = input.Kind
	}

	if err := h.addresses.Update(address); err != nil {
		return response.ServerError(c, "Erro ao atualizar endereço")
	}
	return c.JSON(address)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.addresses.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrAddressNotFound) {
			return response.NotFound(c, "Endereço não encontrado")
		}
		return response.ServerError(c, "Erro ao deletar endereço")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
