package main

import (
	"log"
	"tms/config"
	"tms/database"
	adminRoutes "tms/routers/adminRoutes"
	authRoutes "tms/routers/authRoutes"
	notificationRoutes "tms/routers/notificationRoutes"
	projectRoutes "tms/routers/projectRoutes"
	reviewRoutes "tms/routers/reviewRoutes"
	traineeRoutes "tms/routers/traineeRoutes"
	"tms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	traineeRoutes.SetupTraineeRoutes(app)
	projectRoutes.SetupProjectRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Background jobs (OTP cleanup, pending approvals reminder)
	scheduler := utils.InitializeSchedulers()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
