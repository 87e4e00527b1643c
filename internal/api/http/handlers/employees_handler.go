package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/dto"
	"github.com/wavepark/shift-manager/internal/service"
)

// EmployeesHandler serves /employees.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponses(employees))
}

func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	employee, err := h.employees.Create(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEmployeeResponse(employee))
}

// Replace handles PUT /employees/:id.
func (h *EmployeesHandler) Replace(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	employee, err := h.employees.Replace(c.UserContext(), id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(employee))
}

func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
