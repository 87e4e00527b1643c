package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/dto"
	"github.com/wavepark/shift-manager/internal/repository"
	"github.com/wavepark/shift-manager/internal/service"
)

// AssignmentsHandler serves /assignments.
type AssignmentsHandler struct {
	assignments *service.AssignmentService
}

func NewAssignmentsHandler(assignments *service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{assignments: assignments}
}

func (h *AssignmentsHandler) List(c *fiber.Ctx) error {
	assignments, err := h.assignments.List(c.UserContext(), repository.AssignmentFilter{})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAssignmentResponses(assignments))
}

func (h *AssignmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AssignmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	assignment, err := h.assignments.Create(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAssignmentResponse(assignment))
}

// Patch handles PATCH /assignments/:id.
func (h *AssignmentsHandler) Patch(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	// No body is an empty patch; the lookup still reports a missing id.
	var req dto.AssignmentRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	assignment, err := h.assignments.Patch(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAssignmentResponse(assignment))
}

func (h *AssignmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.assignments.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
