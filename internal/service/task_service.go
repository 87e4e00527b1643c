package service

import (
	"context"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// TaskInput is the complete writable state of a task.
type TaskInput struct {
	Name                  string
	Description           *string
	CertificationRequired *string
}

// TaskService manages duty definitions.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService constructs the service.
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*domain.Task, error) {
	task, err := buildTask(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Replace overwrites every field of the task with input.
func (s *TaskService) Replace(ctx context.Context, id int64, input TaskInput) (*domain.Task, error) {
	task, err := buildTask(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, mapLookupError(err, "Task", id)
	}
	return task, nil
}

// Delete removes the task. Assignments that referenced it lose their task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return mapLookupError(err, "Task", id)
	}
	return nil
}

func buildTask(id int64, input TaskInput) (*domain.Task, error) {
	problems := fieldErrors{}
	problems.required("name", input.Name)
	if err := problems.err("invalid task"); err != nil {
		return nil, err
	}
	return &domain.Task{
		ID:                    id,
		Name:                  input.Name,
		Description:           input.Description,
		CertificationRequired: input.CertificationRequired,
	}, nil
}
