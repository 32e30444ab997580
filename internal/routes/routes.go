// Package routes defines the API routing configuration. It wires
// repositories, services and handlers and registers every resource
// route.
package routes

import (
	"time"

	"mall/internal/handlers"
	"mall/internal/repositories"
	"mall/internal/repositories/catalog"
	"mall/internal/services/authorization"
	"mall/internal/services/enrollment"
	"mall/internal/services/order"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *catalog.Store) {
	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)

	authService := authorization.NewService(userRepo, cardRepo)
	orderService := order.NewService(userRepo, orderRepo, store)
	enrollmentService := enrollment.NewService(enrollmentRepo)

	userHandler := handlers.NewUserHandler(userRepo)
	addressHandler := handlers.NewAddressHandler(addressRepo, userRepo)
	cardHandler := handlers.NewCardHandler(cardRepo, userRepo, authService)
	productHandler := handlers.NewProductHandler(store)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	healthHandler := handlers.NewHealthHandler(store)

	app.Get("/health", healthHandler.Check)

	usuario := app.Group("/usuario")
	usuario.Get("/", userHandler.List)
	usuario.Post("/", userHandler.Create)
	usuario.Get("/:id", userHandler.Get)
	usuario.Put("/:id", userHandler.Update)
	usuario.Delete("/:id", userHandler.Delete)

	endereco := app.Group("/endereco")
	endereco.Get("/usuario/:id", addressHandler.ListByUser)
	endereco.Post("/usuario/:id", addressHandler.Create)
	endereco.Put("/:id", addressHandler.Update)
	endereco.Delete("/:id", addressHandler.Delete)

	cartao := app.Group("/cartao")
	cartao.Get("/usuario/:id", cardHandler.ListByUser)
	cartao.Post("/usuario/:id", cardHandler.Create)
	cartao.Post("/authorize/usuario/:id", cardHandler.Authorize)
	cartao.Put("/saldo/:id", cardHandler.UpdateBalance)
	cartao.Get("/numero/:numero", cardHandler.GetByNumber)
	cartao.Delete("/:id", cardHandler.Delete)

	produto := app.Group("/produto")
	produto.Get("/", productHandler.List)
	produto.Post("/", productHandler.Create)
	produto.Get("/nome/:nome", productHandler.GetByName)
	produto.Get("/categoria/:categoria", productHandler.ListByCategory)
	produto.Get("/:id", productHandler.Get)
	produto.Put("/:id", productHandler.Update)
	produto.Delete("/:id", productHandler.Delete)

	pedido := app.Group("/pedido")
	pedido.Get("/", orderHandler.List)
	pedido.Post("/", orderHandler.Create)
	pedido.Get("/nome/:nome", orderHandler.ListByCustomerName)
	pedido.Get("/cartao/:id", orderHandler.ListByCard)
	pedido.Get("/:id", orderHandler.Get)
	pedido.Put("/:id", orderHandler.Update)
	pedido.Delete("/:id", orderHandler.Delete)

	matriculas := app.Group("/api/matriculas")
	matriculas.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Muitas requisições. Tente novamente mais tarde.",
			})
		},
	}))
	matriculas.Get("/", enrollmentHandler.List)
	matriculas.Post("/", enrollmentHandler.Create)
	matriculas.Get("/:id", enrollmentHandler.Get)
}
