package service

import (
	"context"
	"errors"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// AssignmentInput carries a new assignment. ShiftID and EmployeeID are required.
type AssignmentInput struct {
	ShiftID      *int64
	EmployeeID   *int64
	TaskID       *int64
	Note         *string
	CheckInTime  *domain.ClockTime
	CheckOutTime *domain.ClockTime
}

// AssignmentService places employees on shifts.
type AssignmentService struct {
	assignments repository.AssignmentRepository
}

// NewAssignmentService creates the service.
func NewAssignmentService(assignments repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

// List returns assignments by id with their shift, employee and task.
func (s *AssignmentService) List(ctx context.Context, filter repository.AssignmentFilter) ([]domain.AssignmentDetail, error) {
	assignments, err := s.assignments.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return assignments, nil
}

// Create stores the assignment once its shift, employee and task exist.
// Staffing limits and overlapping shifts are not checked.
func (s *AssignmentService) Create(ctx context.Context, input AssignmentInput) (*domain.AssignmentDetail, error) {
	problems := fieldErrors{}
	if input.ShiftID == nil {
		problems["shift_id"] = "is required"
	}
	if input.EmployeeID == nil {
		problems["employee_id"] = "is required"
	}
	if err := problems.err("invalid assignment"); err != nil {
		return nil, err
	}

	assignment := &domain.ShiftAssignment{
		ShiftID:      *input.ShiftID,
		EmployeeID:   *input.EmployeeID,
		TaskID:       input.TaskID,
		Note:         input.Note,
		CheckInTime:  input.CheckInTime,
		CheckOutTime: input.CheckOutTime,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, mapReferenceError(err)
	}
	return s.get(ctx, assignment.ID)
}

// Patch overwrites only the fields present in patch.
func (s *AssignmentService) Patch(ctx context.Context, id int64, patch domain.AssignmentPatch) (*domain.AssignmentDetail, error) {
	if err := s.assignments.Patch(ctx, id, patch); err != nil {
		var missing *repository.MissingReferenceError
		if errors.As(err, &missing) {
			return nil, mapReferenceError(err)
		}
		return nil, mapLookupError(err, "Assignment", id)
	}
	return s.get(ctx, id)
}

func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	if err := s.assignments.Delete(ctx, id); err != nil {
		return mapLookupError(err, "Assignment", id)
	}
	return nil
}

func (s *AssignmentService) get(ctx context.Context, id int64) (*domain.AssignmentDetail, error) {
	detail, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err, "Assignment", id)
	}
	return detail, nil
}

func mapReferenceError(err error) error {
	var missing *repository.MissingReferenceError
	if !errors.As(err, &missing) {
		return apperrors.MapError(err)
	}
	if missing.Entity == "task" {
		return apperrors.NewBadRequest("Task not found")
	}
	return apperrors.NewBadRequest("Shift or employee not found")
}
