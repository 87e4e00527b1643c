package service

import (
	"context"
	"time"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// ShiftInput is the complete writable state of a shift. A nil RequiredStaff
// stores domain.DefaultRequiredStaff.
type ShiftInput struct {
	Name          string
	Location      string
	StartsAt      *time.Time
	EndsAt        *time.Time
	RequiredStaff *int
}

// ShiftService manages shifts.
type ShiftService struct {
	shifts repository.ShiftRepository
}

// NewShiftService constructs the service.
func NewShiftService(shifts repository.ShiftRepository) *ShiftService {
	return &ShiftService{shifts: shifts}
}

// List returns shifts inside the filter window ordered by start time.
func (s *ShiftService) List(ctx context.Context, filter repository.ShiftFilter) ([]domain.Shift, error) {
	shifts, err := s.shifts.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return shifts, nil
}

func (s *ShiftService) Create(ctx context.Context, input ShiftInput) (*domain.Shift, error) {
	shift, err := buildShift(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, apperrors.MapError(err)
	}
	return shift, nil
}

// Replace overwrites every field of the shift with input.
func (s *ShiftService) Replace(ctx context.Context, id int64, input ShiftInput) (*domain.Shift, error) {
	shift, err := buildShift(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, mapLookupError(err, "Shift", id)
	}
	return shift, nil
}

// Delete removes the shift and its assignments.
func (s *ShiftService) Delete(ctx context.Context, id int64) error {
	if err := s.shifts.Delete(ctx, id); err != nil {
		return mapLookupError(err, "Shift", id)
	}
	return nil
}

// buildShift validates input. Ends before starts is accepted.
func buildShift(id int64, input ShiftInput) (*domain.Shift, error) {
	problems := fieldErrors{}
	problems.required("name", input.Name)
	problems.required("location", input.Location)
	if input.StartsAt == nil {
		problems["starts_at"] = "is required"
	}
	if input.EndsAt == nil {
		problems["ends_at"] = "is required"
	}
	staff := domain.DefaultRequiredStaff
	if input.RequiredStaff != nil {
		staff = *input.RequiredStaff
		if staff < 0 {
			problems["required_staff"] = "must not be negative"
		}
	}
	if err := problems.err("invalid shift"); err != nil {
		return nil, err
	}
	return &domain.Shift{
		ID:            id,
		Name:          input.Name,
		Location:      input.Location,
		StartsAt:      *input.StartsAt,
		EndsAt:        *input.EndsAt,
		RequiredStaff: staff,
	}, nil
}
