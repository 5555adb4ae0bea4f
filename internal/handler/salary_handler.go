package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/repository"
)

type SalaryHandler struct {
	repo repository.SalaryRepository
}

func NewSalaryHandler(repo repository.SalaryRepository) *SalaryHandler {
	return &SalaryHandler{repo: repo}
}

type SalaryMonthRequest struct {
	Month string `json:"month"` // "2026-01" or "2026-01-01"
}

func (h *SalaryHandler) GetByMonth(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)
	if caller.Owner {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The owner has no salary records"})
	}

	var req SalaryMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month is required"})
	}

	salary, err := h.repo.MonthlySalary(caller.EmpID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"salary": fiber.Map{"monthly_salary": salary}})
}

// DownloadSlip builds the salary slip as a spreadsheet and streams it back.
func (h *SalaryHandler) DownloadSlip(c *fiber.Ctx) error {
	caller := middleware.GetCaller(c)
	if caller.Owner {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The owner has no salary records"})
	}

	var req SalaryMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	monthStart, monthEnd, err := monthBounds(req.Month)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	salary, err := h.repo.FindForMonth(caller.EmpID, monthStart, monthEnd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Salary not found"})
		}
		return respondError(c, err)
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Sheet1"
	rows := [][]interface{}{
		{"Salary Slip"},
		{},
		{"Employee ID", salary.EmployeeID},
		{"Name", salary.Employee.Name},
		{"Role", salary.Employee.Role},
		{"Salary Month", salary.SalaryMonth},
		{"Salary Amount", salary.SalaryAmount.StringFixed(2)},
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return respondError(c, err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return respondError(c, err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=salary_%s.xlsx", monthStart[:7]))
	return c.Send(buf.Bytes())
}

// monthBounds expands "YYYY-MM" (or any date within the month) to the first
// and last day of that month.
func monthBounds(month string) (string, string, error) {
	if month == "" {
		return "", "", errors.New("Month is required")
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		if start, err = time.Parse("2006-01-02", month); err != nil {
			return "", "", errors.New("Month must be YYYY-MM or YYYY-MM-DD")
		}
		start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}
