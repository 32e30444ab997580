// Package main is the entry point for the dialog bot. It wires the
// wizard machine over the store API client and a Redis-backed session
// store, and serves the single message endpoint.
package main

import (
	"context"
	"log"
	"time"

	"mall/internal/bot"
	"mall/internal/bot/client"
	"mall/internal/bot/faq"
	"mall/internal/bot/session"
	"mall/internal/bot/wizard"
	"mall/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadEnv()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.GetEnv("REDIS_HOST", "localhost") + ":" + config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("SESSION_REDIS_DB", 1),
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	sessionTTL := config.GetDurationEnv("SESSION_TTL", 30*time.Minute)
	sessions := session.NewStore(redisClient, sessionTTL)

	apiClient := client.New(config.GetEnv("API_BASE_URL", "http://localhost:3000"))
	machine := wizard.NewMachine(apiClient, sessions, faq.Default())
	handler := bot.NewMessageHandler(machine)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/messages", limiter.New(limiter.Config{
		Max:        60,
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

	app.Post("/api/messages", handler.Post)

	log.Fatal(app.Listen(":" + config.GetEnv("BOT_PORT", "3978")))
}
