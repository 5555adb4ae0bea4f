package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/handler"
	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/repository"
)

func SetupHolidayRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewHolidayRepository(db)
	hdl := handler.NewHolidayHandler(repo)

	api := app.Group("/api/holidays", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", middleware.Role(auth.RoleHR, auth.RoleManager), hdl.Add)
}
