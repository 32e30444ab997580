package handlers

import (
	"mall/internal/repositories"
	"mall/internal/repositories/catalog"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	catalog *catalog.Store
}

func NewHealthHandler(store *catalog.Store) *HealthHandler {
	return &HealthHandler{catalog: store}
}

// Check pings Postgres and the catalog store.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := repositories.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"detail": "database unreachable",
		})
	}

	if err := h.catalog.HealthCheck(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"detail": "catalog unreachable",
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
