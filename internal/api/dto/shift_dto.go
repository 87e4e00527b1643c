package dto

import (
	"time"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

// ShiftRequest is the body of POST and PUT /shifts.
type ShiftRequest struct {
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	StartsAt      *Timestamp `json:"starts_at"`
	EndsAt        *Timestamp `json:"ends_at"`
	RequiredStaff *int       `json:"required_staff"`
}

func (r ShiftRequest) Input() service.ShiftInput {
	return service.ShiftInput{
		Name:          r.Name,
		Location:      r.Location,
		StartsAt:      r.StartsAt.timePtr(),
		EndsAt:        r.EndsAt.timePtr(),
		RequiredStaff: r.RequiredStaff,
	}
}

type ShiftResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	RequiredStaff int       `json:"required_staff"`
}

func NewShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		Name:          s.Name,
		Location:      s.Location,
		StartsAt:      s.StartsAt,
		EndsAt:        s.EndsAt,
		RequiredStaff: s.RequiredStaff,
	}
}

func NewShiftResponses(shifts []domain.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, NewShiftResponse(&shifts[i]))
	}
	return out
}
