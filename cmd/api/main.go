package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"employee-portal-backend/config"
	"employee-portal-backend/internal/mailer"
	"employee-portal-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	// The client sends the session cookie cross-origin, so credentials
	// must be allowed and the origin echoed back.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	}))
	app.Use(logger.New())

	mail := mailer.NewFromEnv()

	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB, mail)
	routes.SetupHolidayRoutes(app, config.DB)
	routes.SetupSalaryRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	logrus.WithField("port", port).Info("server listening")
	if err := app.Listen(":" + port); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}
