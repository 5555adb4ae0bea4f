package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal-backend/internal/model"
	"employee-portal-backend/internal/repository"
)

type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

type AddHolidayRequest struct {
	HolidayDate string `json:"holiday_date"`
	HolidayName string `json:"holiday_name"`
}

func (h *HolidayHandler) Add(c *fiber.Ctx) error {
	var req AddHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.HolidayDate == "" || req.HolidayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "holiday_date and holiday_name are required"})
	}
	if _, err := time.Parse("2006-01-02", req.HolidayDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "holiday_date must be YYYY-MM-DD"})
	}

	exists, err := h.repo.IsHoliday(req.HolidayDate)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Holiday for this date already exists"})
	}

	holiday := model.Holiday{
		HolidayDate: req.HolidayDate,
		HolidayName: req.HolidayName,
	}
	if err := h.repo.Create(&holiday); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Holiday added successfully",
		"data":    holiday,
	})
}

func (h *HolidayHandler) GetAll(c *fiber.Ctx) error {
	holidays, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"holidays": holidays})
}
