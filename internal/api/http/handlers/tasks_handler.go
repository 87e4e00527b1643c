package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/dto"
	"github.com/wavepark/shift-manager/internal/service"
)

// TasksHandler serves /tasks.
type TasksHandler struct {
	tasks *service.TaskService
}

func NewTasksHandler(tasks *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

func (h *TasksHandler) List(c *fiber.Ctx) error {
	tasks, err := h.tasks.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponses(tasks))
}

func (h *TasksHandler) Create(c *fiber.Ctx) error {
	var req dto.TaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	task, err := h.tasks.Create(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTaskResponse(task))
}

func (h *TasksHandler) Replace(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	task, err := h.tasks.Replace(c.UserContext(), id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponse(task))
}

func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.tasks.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
