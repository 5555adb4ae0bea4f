package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"employee-portal-backend/internal/handler"
	"employee-portal-backend/internal/mailer"
	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/repository"
	"employee-portal-backend/internal/service"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	svc := service.NewLeaveService(db, attendanceRepo, employeeRepo, mail)
	hdl := handler.NewAttendanceHandler(svc)

	api := app.Group("/api/attendance", middleware.Auth)

	// For employees
	api.Post("/apply", hdl.ApplyLeave)
	api.Get("/employee/:empId", hdl.GetEmployeeLeaves)

	// For approvers
	api.Patch("/approve/:id", hdl.ApproveLeave)
	api.Get("/pending", hdl.GetPendingLeaves)
	api.Get("/getLeavesForApproval", hdl.GetLeavesForApproval)

	api.Get("/", hdl.GetAllLeaves)
}
