package service

import (
	"bytes"
	"context"

	"github.com/wavepark/shift-manager/internal/report"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// ReportService renders assignment exports.
type ReportService struct {
	assignments repository.AssignmentRepository
}

// NewReportService constructs the service.
func NewReportService(assignments repository.AssignmentRepository) *ReportService {
	return &ReportService{assignments: assignments}
}

// AssignmentsCSV returns the assignments of shifts inside the window as CSV.
func (s *ReportService) AssignmentsCSV(ctx context.Context, window repository.ShiftFilter) ([]byte, error) {
	details, err := s.assignments.List(ctx, repository.AssignmentFilter{Shift: window})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	var buf bytes.Buffer
	if err := report.WriteAssignmentsCSV(&buf, details); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return buf.Bytes(), nil
}

// AssignmentsXLSX returns the same rows as an Excel workbook.
func (s *ReportService) AssignmentsXLSX(ctx context.Context, window repository.ShiftFilter) ([]byte, error) {
	details, err := s.assignments.List(ctx, repository.AssignmentFilter{Shift: window})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	var buf bytes.Buffer
	if err := report.WriteAssignmentsXLSX(&buf, details); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return buf.Bytes(), nil
}
