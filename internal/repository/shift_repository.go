package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavepark/shift-manager/internal/domain"
)

// ShiftFilter narrows shift listings to a time window. Start keeps shifts
// starting at or after it, End keeps shifts ending at or before it.
type ShiftFilter struct {
	Start *time.Time
	End   *time.Time
}

// Matches reports whether the shift falls inside the window.
func (f ShiftFilter) Matches(s domain.Shift) bool {
	if f.Start != nil && s.StartsAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && s.EndsAt.After(*f.End) {
		return false
	}
	return true
}

// clauses appends the filter conditions for the given shift table alias.
func (f ShiftFilter) clauses(alias string, args []any) ([]string, []any) {
	clauses := []string{"1=1"}
	if f.Start != nil {
		args = append(args, *f.Start)
		clauses = append(clauses, fmt.Sprintf("%s.starts_at >= $%d", alias, len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		clauses = append(clauses, fmt.Sprintf("%s.ends_at <= $%d", alias, len(args)))
	}
	return clauses, args
}

// ShiftRepository manages shift persistence.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository constructs repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

const shiftColumns = `s.id, s.name, s.location, s.starts_at, s.ends_at, s.required_staff`

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shift (name, location, starts_at, ends_at, required_staff)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		shift.Name,
		shift.Location,
		shift.StartsAt,
		shift.EndsAt,
		shift.RequiredStaff,
	).Scan(&shift.ID)
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	const query = `
        UPDATE shift SET name=$1, location=$2, starts_at=$3, ends_at=$4, required_staff=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		shift.Name,
		shift.Location,
		shift.StartsAt,
		shift.EndsAt,
		shift.RequiredStaff,
		shift.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the shift together with its assignments.
func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shift WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift s WHERE s.id=$1`
	return scanShift(r.pool.QueryRow(ctx, query, id))
}

// List returns shifts ordered by start time, then id.
func (r *shiftRepository) List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error) {
	clauses, args := filter.clauses("s", nil)
	query := fmt.Sprintf(`SELECT %s FROM shift s WHERE %s ORDER BY s.starts_at, s.id`,
		shiftColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Shift{}
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *shift)
	}
	return result, rows.Err()
}

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var s domain.Shift
	if err := row.Scan(&s.ID, &s.Name, &s.Location, &s.StartsAt, &s.EndsAt, &s.RequiredStaff); err != nil {
		return nil, err
	}
	return &s, nil
}
