package service

import (
	"context"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// EmployeeInput is the complete writable state of an employee. Nil optional
// fields are stored as null, also on replace.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Position  *string
	Phone     *string
	Notes     *string
}

func (in EmployeeInput) validate() error {
	problems := fieldErrors{}
	problems.required("first_name", in.FirstName)
	problems.required("last_name", in.LastName)
	return problems.err("invalid employee")
}

func (in EmployeeInput) employee(id int64) *domain.Employee {
	return &domain.Employee{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Position:  in.Position,
		Phone:     in.Phone,
		Notes:     in.Notes,
	}
}

// EmployeeService manages the staff roster.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	employee := input.employee(0)
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// Replace overwrites every field of the employee with input.
func (s *EmployeeService) Replace(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	employee := input.employee(id)
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, mapLookupError(err, "Employee", id)
	}
	return employee, nil
}

// Delete removes the employee and its assignments.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return mapLookupError(err, "Employee", id)
	}
	return nil
}
