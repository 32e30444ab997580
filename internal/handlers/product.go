package handlers

import (
	"errors"

	"mall/internal/models"
	"mall/internal/repositories/catalog"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	catalog *catalog.Store
}

func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{catalog: store}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Erro ao listar produtos")
	}
	return c.JSON(products)
}

func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	products, err := h.catalog.ListByCategory(c.Context(), c.Params("categoria"))
	if err != nil {
		return response.ServerError(c, "Erro ao listar produtos")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return response.NotFound(c, "Produto não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar produto")
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetByName(c *fiber.Ctx) error {
	product, err := h.catalog.FindByName(c.Context(), c.Params("nome"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return response.NotFound(c, "Produto não encontrado")
		}
		return response.ServerError(c, "Erro ao buscar produto")
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	v := validation.New()
	v.Check(input.Category != "" && input.Name != "" && !input.Price.IsZero(),
		"produto", "Categoria, nome e preço são obrigatórios")
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	product, err := h.catalog.Create(c.Context(), input)
	if err != nil {
		return response.ServerError(c, "Erro ao criar produto")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "O corpo da requisição não pode estar vazio")
	}

	product, err := h.catalog.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return response.NotFound(c, "Produto não encontrado")
		}
		return response.ServerError(c, "Erro ao atualizar produto")
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return response.NotFound(c, "Produto não encontrado")
		}
		return response.ServerError(c, "Erro ao deletar produto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
