package handlers

import (
	"errors"

	"mall/internal/models"
	"mall/internal/repositories"
	"mall/internal/services/enrollment"
	"mall/internal/utils/response"
	"mall/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentHandler struct {
	service enrollment.Service
}

func NewEnrollmentHandler(service enrollment.Service) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	enrollments, err := h.service.List()
	if err != nil {
		return response.ServerError(c, "Erro ao listar matrículas")
	}
	return c.JSON(enrollments)
}

func (h *EnrollmentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	enr, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return response.NotFound(c, "Matrícula não encontrada")
		}
		return response.ServerError(c, "Erro ao buscar matrícula")
	}
	return c.JSON(enr)
}

func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var input models.CreateEnrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Dados JSON inválidos")
	}

	v := validation.New()
	v.Required("nome", input.Name)
	v.Required("email", input.Email)
	v.Required("curso", input.Course)
	if v.Valid() {
		v.Check(validation.Email(input.Email), "email", "Email inválido")
	}
	if !v.Valid() {
		return response.BadRequest(c, v.First())
	}

	enr, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, enrollment.ErrDuplicateEmail) {
			return response.Conflict(c, "Email já cadastrado")
		}
		return response.ServerError(c, "Erro ao criar matrícula")
	}
	return c.Status(fiber.StatusCreated).JSON(enr)
}
