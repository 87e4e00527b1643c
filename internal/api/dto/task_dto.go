package dto

import (
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

// TaskRequest is the body of POST and PUT /tasks.
type TaskRequest struct {
	Name                  string  `json:"name"`
	Description           *string `json:"description"`
	CertificationRequired *string `json:"certification_required"`
}

func (r TaskRequest) Input() service.TaskInput {
	return service.TaskInput{
		Name:                  r.Name,
		Description:           r.Description,
		CertificationRequired: r.CertificationRequired,
	}
}

type TaskResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Description           *string `json:"description"`
	CertificationRequired *string `json:"certification_required"`
}

func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		Description:           t.Description,
		CertificationRequired: t.CertificationRequired,
	}
}

func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
