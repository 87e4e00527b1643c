package dto

import (
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

// AssignmentRequest is the body of POST /assignments and PATCH
// /assignments/:id. On PATCH an absent or null field is left unchanged.
type AssignmentRequest struct {
	ShiftID      *int64            `json:"shift_id"`
	EmployeeID   *int64            `json:"employee_id"`
	TaskID       *int64            `json:"task_id"`
	Note         *string           `json:"note"`
	CheckInTime  *domain.ClockTime `json:"check_in_time"`
	CheckOutTime *domain.ClockTime `json:"check_out_time"`
}

func (r AssignmentRequest) Input() service.AssignmentInput {
	return service.AssignmentInput{
		ShiftID:      r.ShiftID,
		EmployeeID:   r.EmployeeID,
		TaskID:       r.TaskID,
		Note:         r.Note,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
	}
}

func (r AssignmentRequest) Patch() domain.AssignmentPatch {
	return domain.AssignmentPatch{
		ShiftID:      r.ShiftID,
		EmployeeID:   r.EmployeeID,
		TaskID:       r.TaskID,
		Note:         r.Note,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
	}
}

// AssignmentResponse embeds the referenced shift, employee and task.
type AssignmentResponse struct {
	ID           int64             `json:"id"`
	ShiftID      int64             `json:"shift_id"`
	EmployeeID   int64             `json:"employee_id"`
	TaskID       *int64            `json:"task_id"`
	Note         *string           `json:"note"`
	CheckInTime  *domain.ClockTime `json:"check_in_time"`
	CheckOutTime *domain.ClockTime `json:"check_out_time"`
	Shift        ShiftResponse     `json:"shift"`
	Employee     EmployeeResponse  `json:"employee"`
	Task         *TaskResponse     `json:"task"`
}

func NewAssignmentResponse(d *domain.AssignmentDetail) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           d.ID,
		ShiftID:      d.ShiftID,
		EmployeeID:   d.EmployeeID,
		TaskID:       d.TaskID,
		Note:         d.Note,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		Shift:        NewShiftResponse(&d.Shift),
		Employee:     NewEmployeeResponse(&d.Employee),
	}
	if d.Task != nil {
		task := NewTaskResponse(d.Task)
		resp.Task = &task
	}
	return resp
}

func NewAssignmentResponses(details []domain.AssignmentDetail) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(details))
	for i := range details {
		out = append(out, NewAssignmentResponse(&details[i]))
	}
	return out
}
