// Package main is the entry point for the store API. It initializes
// the Postgres entity store and the Redis product catalog, sets up the
// HTTP server and starts serving.
package main

import (
	"context"
	"log"

	"mall/internal/config"
	"mall/internal/repositories"
	"mall/internal/repositories/catalog"
	"mall/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	redisClient := catalog.NewRedisClient(&catalog.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}()

	store := catalog.NewStore(redisClient)
	if err := store.HealthCheck(context.Background()); err != nil {
		log.Printf("Catalog store unreachable at startup: %v", err)
	} else {
		log.Println("Catalog store connected")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, repositories.DB, store)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
