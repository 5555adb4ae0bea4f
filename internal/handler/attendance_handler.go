package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/service"
)

type AttendanceHandler struct {
	svc service.LeaveService
}

func NewAttendanceHandler(svc service.LeaveService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

type ApplyLeaveRequest struct {
	LeaveDate string `json:"leave_date"`
}

func (h *AttendanceHandler) ApplyLeave(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)

	var req ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.svc.Apply(caller, req.LeaveDate)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave applied successfully",
		"data":    record,
	})
}

func (h *AttendanceHandler) ApproveLeave(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)

	leaveID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave id"})
	}

	if err := h.svc.Approve(caller, uint(leaveID)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Leave approved successfully"})
}

func (h *AttendanceHandler) GetLeavesForApproval(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)

	leaves, err := h.svc.ListApprovable(caller)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

func (h *AttendanceHandler) GetPendingLeaves(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)

	leaves, err := h.svc.ListPending(caller)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"leaves": leaves})
}

func (h *AttendanceHandler) GetEmployeeLeaves(c *fiber.Ctx) error {
	empID := c.Params("empId")

	leaves, err := h.svc.ListByEmployee(empID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"leaves": leaves})
}

func (h *AttendanceHandler) GetAllLeaves(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	leaves, pagination, err := h.svc.ListAll(page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"leaves":     leaves,
		"pagination": pagination,
	})
}
