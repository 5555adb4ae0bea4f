package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.svc.Login(req)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    result.Token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"data": fiber.Map{
			"empId": result.EmpID,
			"name":  result.Name,
			"role":  result.Role,
		},
	})
}

func (h *EmployeeHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req service.CreateEmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.svc.Create(req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Employee created successfully",
		"employee_id": id,
	})
}

type AssignManagerRequest struct {
	EmpID     string `json:"empId"`
	ManagerID string `json:"managerId"`
}

func (h *EmployeeHandler) AssignManager(c *fiber.Ctx) error {
	var req AssignManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.svc.AssignManager(req.EmpID, req.ManagerID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Employee " + req.EmpID + " is now assigned to manager " + req.ManagerID,
	})
}

func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	empID := c.Params("empId")

	var req service.EditEmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.svc.Edit(empID, req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Employee " + empID + " details updated successfully"})
}

func (h *EmployeeHandler) GetData(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	data, err := h.svc.GetData(caller, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(data)
}

func (h *EmployeeHandler) GetManagerCandidates(c *fiber.Ctx) error {
	empID := c.Params("empId")

	candidates, err := h.svc.ListManagerCandidates(empID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": candidates})
}

func (h *EmployeeHandler) GetAllWithManager(c *fiber.Ctx) error {
	employees, err := h.svc.ListAllWithManager()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Employees fetched successfully",
		"employeeData": employees,
	})
}
