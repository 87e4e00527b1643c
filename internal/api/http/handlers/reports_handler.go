package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler serves the assignment exports.
type ReportsHandler struct {
	reports *service.ReportService
}

func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// AssignmentsCSV handles GET /reports/assignments.csv?start=&end=.
func (h *ReportsHandler) AssignmentsCSV(c *fiber.Ctx) error {
	filter, err := shiftWindow(c)
	if err != nil {
		return err
	}
	body, err := h.reports.AssignmentsCSV(c.UserContext(), filter)
	if err != nil {
		return err
	}
	c.Attachment("assignments.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(body)
}

// AssignmentsXLSX handles GET /reports/assignments.xlsx?start=&end=.
func (h *ReportsHandler) AssignmentsXLSX(c *fiber.Ctx) error {
	filter, err := shiftWindow(c)
	if err != nil {
		return err
	}
	body, err := h.reports.AssignmentsXLSX(c.UserContext(), filter)
	if err != nil {
		return err
	}
	c.Attachment("assignments.xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(body)
}
