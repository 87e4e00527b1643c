package dto

import (
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

// EmployeeRequest is the body of POST and PUT /employees.
type EmployeeRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

func (r EmployeeRequest) Input() service.EmployeeInput {
	return service.EmployeeInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Position:  r.Position,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}
}

type EmployeeResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  e.Position,
		Phone:     e.Phone,
		Notes:     e.Notes,
	}
}

func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, NewEmployeeResponse(&employees[i]))
	}
	return out
}
