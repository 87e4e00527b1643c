package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/dto"
	"github.com/wavepark/shift-manager/internal/service"
)

// ShiftsHandler serves /shifts.
type ShiftsHandler struct {
	shifts *service.ShiftService
}

func NewShiftsHandler(shifts *service.ShiftService) *ShiftsHandler {
	return &ShiftsHandler{shifts: shifts}
}

// List handles GET /shifts?start=&end=.
func (h *ShiftsHandler) List(c *fiber.Ctx) error {
	filter, err := shiftWindow(c)
	if err != nil {
		return err
	}
	shifts, err := h.shifts.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewShiftResponses(shifts))
}

func (h *ShiftsHandler) Create(c *fiber.Ctx) error {
	var req dto.ShiftRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	shift, err := h.shifts.Create(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewShiftResponse(shift))
}

func (h *ShiftsHandler) Replace(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.ShiftRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	shift, err := h.shifts.Replace(c.UserContext(), id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewShiftResponse(shift))
}

func (h *ShiftsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.shifts.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
