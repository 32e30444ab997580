package handlers

import (
	"errors"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/services/authorization"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cards         repositories.CardRepository
	users         repositories.UserRepository
	authorization authorization.Service
}

func NewCardHandler(cards repositories.CardRepository, users repositories.UserRepository, auth authorization.Service) *CardHandler {
	return &CardHandler{cards: cards, users: users, authorization: auth}
}

func (h *CardHandler) ListByUser(c *fiber.Ctx) error {
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

	cards, err := h.cards.ListByUser(uint(userID))
	if err != nil {
		return response.ServerError(c, "Erro ao listar cartões")
	}
	if len(cards) == 0 {
		return response.NotFound(c, "Nenhum cartão encontrado para este usuário")
	}
	return c.JSON(cards)
}

func (h *CardHandler) Create(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	if _, err := h.users.GetByID(uint(userID)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar usuário")
	}

	v := validation.New()
	v.Required("numero", input.Number)
	v.Required("nome_impresso", input.PrintedName)
	v.Required("validade", input.Expiry)
	v.Required("cvv", input.CVV)
	v.Required("bandeira", input.Brand)
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	exists, err := h.cards.ExistsByUserAndNumber(uint(userID), input.Number)
	if err != nil {
		return response.ServerError(c, "Erro ao criar cartão")
	}
	if exists {
		return response.BadRequest(c, "Já existe um cartão cadastrado com este número para este usuário")
	}

	expiry, err := validation.ParseExpiry(input.Expiry)
	if err != nil {
		return response.BadRequest(c, "Formato de data inválido. Use o formato MM/AAAA")
	}

	card := &models.Card{
		UserID:      uint(userID),
		Number:      input.Number,
		PrintedName: input.PrintedName,
		Expiry:      expiry,
		CVV:         input.CVV,
		Brand:       input.Brand,
		Kind:        input.Kind,
		Balance:     input.Balance,
	}
	if err := h.cards.Create(card); err != nil {
		return response.ServerError(c, "Erro ao criar cartão")
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// Authorize runs the card authorization sequence for a user. The
// response body is the same for both outcomes; only the status code
// and the authorization code differ.
func (h *CardHandler) Authorize(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req authorization.Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	result, err := h.authorization.Authorize(uint(userID), req)
	if err != nil {
		return response.ServerError(c, "Erro ao autorizar transação")
	}
	return c.Status(result.HTTPStatus()).JSON(result)
}

func (h *CardHandler) UpdateBalance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.BalanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Dados JSON inválidos")
	}
	if input.Balance == nil {
		return response.BadRequest(c, "O campo 'saldo' é obrigatório")
	}
	// A negative top-up could push the balance below zero.
	if input.Balance.IsNegative() {
		return response.BadRequest(c, "O campo 'saldo' não pode ser negativo")
	}

	card, err := h.cards.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return response.NotFound(c, "Cartão não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar cartão")
	}

	card.Balance = card.Balance.Add(*input.Balance)
	if err := h.cards.Save(card); err != nil {
		return response.ServerError(c, "Erro ao atualizar saldo")
	}

	return c.JSON(fiber.Map{
		"message":   "Saldo atualizado com sucesso",
		"cartao_id": card.ID,
		"saldo":     card.Balance,
	})
}

func (h *CardHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("numero")

	card, err := h.cards.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return response.NotFound(c, "Cartão não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar cartão")
	}
	return c.JSON(card)
}

func (h *CardHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.cards.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return response.NotFound(c, "Cartão não encontrado")
		}
		return response.ServerError(c, "Erro ao deletar cartão")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
