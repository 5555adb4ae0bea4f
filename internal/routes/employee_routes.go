package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/handler"
	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/repository"
	"employee-portal-backend/internal/service"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	svc := service.NewEmployeeService(repo)
	hdl := handler.NewEmployeeHandler(svc)

	api := app.Group("/api/employees")

	// Auth
	api.Post("/login", hdl.Login)
	app.Post("/logout", hdl.Logout)

	// Directory (any authenticated caller)
	api.Get("/empdata", middleware.Auth, hdl.GetData)
	api.Get("/getallEmptData", middleware.Auth, hdl.GetAllWithManager)
	api.Get("/manager-candidates/:empId", middleware.Auth, hdl.GetManagerCandidates)

	// Administration (HR and above)
	admin := api.Group("", middleware.Auth, middleware.Role(auth.RoleHR, auth.RoleManager))
	admin.Post("/create", hdl.Create)
	admin.Patch("/assign", hdl.AssignManager)
	admin.Patch("/update/:empId", hdl.Edit)
}
