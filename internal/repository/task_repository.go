package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavepark/shift-manager/internal/domain"
)

// TaskRepository manages task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository constructs repository.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = `id, name, description, certification_required`

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
        INSERT INTO task (name, description, certification_required)
        VALUES ($1,$2,$3)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		task.Name,
		task.Description,
		task.CertificationRequired,
	).Scan(&task.ID)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	const query = `
        UPDATE task SET name=$1, description=$2, certification_required=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		task.Name,
		task.Description,
		task.CertificationRequired,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the task; assignments referencing it keep their row with task_id cleared.
func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM task WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM task WHERE id=$1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.CertificationRequired)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM task ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CertificationRequired); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
