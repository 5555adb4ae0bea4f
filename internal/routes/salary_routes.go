package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"employee-portal-backend/internal/handler"
	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/repository"
)

func SetupSalaryRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewSalaryRepository(db)
	hdl := handler.NewSalaryHandler(repo)

	api := app.Group("/api/salary", middleware.Auth)

	api.Post("/month", hdl.GetByMonth)
	api.Post("/download", hdl.DownloadSlip)
}
