package handlers

import (
	"errors"
	"time"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/services/order"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders  repositories.OrderRepository
	service order.Service
}

func NewOrderHandler(orders repositories.OrderRepository, service order.Service) *OrderHandler {
	return &OrderHandler{orders: orders, service: service}
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List()
	if err != nil {
		return response.ServerError(c, "Erro ao listar pedidos")
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	ord, err := h.orders.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return response.NotFound(c, "Pedido não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar pedido")
	}
	return c.JSON(ord)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var input models.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	v := validation.New()
	v.Check(input.UserID != 0, "id_usuario", "O campo 'id_usuario' é obrigatório")
	v.Check(input.ProductID != "", "id_produto", "O campo 'id_produto' é obrigatório")
	v.Check(!input.Total.IsZero(), "valor_total", "O campo 'valor_total' é obrigatório")
	v.Check(input.CardID != 0, "id_cartao", "O campo 'id_cartao' é obrigatório")
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	ord, err := h.service.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.ServerError(c, "Erro ao criar pedido")
	}
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	ord, err := h.orders.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return response.NotFound(c, "Pedido não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar pedido")
	}

	var input models.UpdateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	if input.CustomerName != "" {
		ord.CustomerName = input.CustomerName
	}
	if input.ProductName != "" {
		ord.ProductName = input.ProductName
	}
	if input.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", input.OrderDate)
		if err != nil {
			return response.BadRequest(c, "Formato de data inválido. Use o formato AAAA-MM-DD")
		}
		ord.OrderDate = parsed
	}
	if input.Total != nil {
		ord.Total = *input.Total
	}
	if input.Status != "" {
		ord.Status = input.Status
	}

	if err := h.orders.Update(ord); err != nil {
		return response.ServerError(c, "Erro ao atualizar pedido")
	}
	return c.JSON(ord)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.orders.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return response.NotFound(c, "Pedido não encontrado")
		}
		return response.ServerError(c, "Erro ao deletar pedido")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrderHandler) ListByCustomerName(c *fiber.Ctx) error {
	orders, err := h.orders.ListByCustomerName(c.Params("nome"))
	if err != nil {
		return response.ServerError(c, "Erro ao listar pedidos")
	}
	return c.JSON(orders)
}

func (h *OrderHandler) ListByCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	orders, err := h.orders.ListByCard(uint(cardID))
	if err != nil {
		return response.ServerError(c, "Erro ao listar pedidos")
	}
	return c.JSON(orders)
}
