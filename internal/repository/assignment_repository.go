package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavepark/shift-manager/internal/domain"
)

// AssignmentFilter narrows assignment listings by the window of their shift.
type AssignmentFilter struct {
	Shift ShiftFilter
}

// AssignmentRepository manages shift assignments. Create and Patch verify
// the referenced rows inside the writing transaction and report missing ones
// as *MissingReferenceError.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.ShiftAssignment) error
	Patch(ctx context.Context, id int64, patch domain.AssignmentPatch) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.AssignmentDetail, error)
	List(ctx context.Context, filter AssignmentFilter) ([]domain.AssignmentDetail, error)
}

type assignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository constructs repository.
func NewAssignmentRepository(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepository{pool: pool}
}

const assignmentDetailQuery = `
        SELECT a.id, a.shift_id, a.employee_id, a.task_id, a.note, a.check_in_time, a.check_out_time,
               s.id, s.name, s.location, s.starts_at, s.ends_at, s.required_staff,
               e.id, e.first_name, e.last_name, e.position, e.phone, e.notes,
               t.id, t.name, t.description, t.certification_required
        FROM shiftassignment a
        JOIN shift s ON s.id = a.shift_id
        JOIN employee e ON e.id = a.employee_id
        LEFT JOIN task t ON t.id = a.task_id`

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.ShiftAssignment) error {
	const query = `
        INSERT INTO shiftassignment (shift_id, employee_id, task_id, note, check_in_time, check_out_time)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockReferences(ctx, tx, assignment); err != nil {
			return err
		}
		err := tx.QueryRow(ctx, query,
			assignment.ShiftID,
			assignment.EmployeeID,
			assignment.TaskID,
			assignment.Note,
			toPgTime(assignment.CheckInTime),
			toPgTime(assignment.CheckOutTime),
		).Scan(&assignment.ID)
		return translateForeignKey(err)
	})
}

// Patch overwrites only the fields present in patch.
func (r *assignmentRepository) Patch(ctx context.Context, id int64, patch domain.AssignmentPatch) error {
	const selectQuery = `
        SELECT id, shift_id, employee_id, task_id, note, check_in_time, check_out_time
        FROM shiftassignment WHERE id=$1 FOR UPDATE`
	const updateQuery = `
        UPDATE shiftassignment
        SET shift_id=$1, employee_id=$2, task_id=$3, note=$4, check_in_time=$5, check_out_time=$6
        WHERE id=$7`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := scanAssignment(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			return err
		}
		if patch.Empty() {
			return nil
		}
		patch.Apply(current)
		if patch.MovesReferences() {
			if err := lockReferences(ctx, tx, current); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx, updateQuery,
			current.ShiftID,
			current.EmployeeID,
			current.TaskID,
			current.Note,
			toPgTime(current.CheckInTime),
			toPgTime(current.CheckOutTime),
			current.ID,
		)
		return translateForeignKey(err)
	})
}

func (r *assignmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shiftassignment WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (*domain.AssignmentDetail, error) {
	return scanAssignmentDetail(r.pool.QueryRow(ctx, assignmentDetailQuery+` WHERE a.id=$1`, id))
}

// List returns assignments by id, each with its shift, employee and task.
func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]domain.AssignmentDetail, error) {
	clauses, args := filter.Shift.clauses("s", nil)
	query := fmt.Sprintf(`%s WHERE %s ORDER BY a.id`, assignmentDetailQuery, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AssignmentDetail{}
	for rows.Next() {
		detail, err := scanAssignmentDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *detail)
	}
	return result, rows.Err()
}

// lockReferences checks that the referenced rows exist and holds a share
// lock on them until the transaction ends, so they cannot be deleted
// between the check and the write.
func lockReferences(ctx context.Context, tx pgx.Tx, a *domain.ShiftAssignment) error {
	checks := []struct {
		entity string
		query  string
		id     *int64
	}{
		{"shift", `SELECT id FROM shift WHERE id=$1 FOR SHARE`, &a.ShiftID},
		{"employee", `SELECT id FROM employee WHERE id=$1 FOR SHARE`, &a.EmployeeID},
		{"task", `SELECT id FROM task WHERE id=$1 FOR SHARE`, a.TaskID},
	}
	for _, check := range checks {
		if check.id == nil {
			continue
		}
		var found int64
		err := tx.QueryRow(ctx, check.query, *check.id).Scan(&found)
		if errors.Is(err, pgx.ErrNoRows) {
			return &MissingReferenceError{Entity: check.entity, ID: *check.id}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func scanAssignment(row pgx.Row) (*domain.ShiftAssignment, error) {
	var (
		a            domain.ShiftAssignment
		checkIn, out pgtype.Time
	)
	if err := row.Scan(&a.ID, &a.ShiftID, &a.EmployeeID, &a.TaskID, &a.Note, &checkIn, &out); err != nil {
		return nil, err
	}
	a.CheckInTime = fromPgTime(checkIn)
	a.CheckOutTime = fromPgTime(out)
	return &a, nil
}

func scanAssignmentDetail(row pgx.Row) (*domain.AssignmentDetail, error) {
	var (
		d               domain.AssignmentDetail
		checkIn, out    pgtype.Time
		taskID          *int64
		taskName        *string
		taskDescription *string
		taskCertificate *string
	)
	err := row.Scan(
		&d.ID, &d.ShiftID, &d.EmployeeID, &d.TaskID, &d.Note, &checkIn, &out,
		&d.Shift.ID, &d.Shift.Name, &d.Shift.Location, &d.Shift.StartsAt, &d.Shift.EndsAt, &d.Shift.RequiredStaff,
		&d.Employee.ID, &d.Employee.FirstName, &d.Employee.LastName, &d.Employee.Position, &d.Employee.Phone, &d.Employee.Notes,
		&taskID, &taskName, &taskDescription, &taskCertificate,
	)
	if err != nil {
		return nil, err
	}
	d.CheckInTime = fromPgTime(checkIn)
	d.CheckOutTime = fromPgTime(out)
	if taskID != nil {
		d.Task = &domain.Task{
			ID:                    *taskID,
			Name:                  derefString(taskName),
			Description:           taskDescription,
			CertificationRequired: taskCertificate,
		}
	}
	return &d, nil
}

func toPgTime(c *domain.ClockTime) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: c.SinceMidnight().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) *domain.ClockTime {
	if !t.Valid {
		return nil
	}
	c := domain.ClockTimeOf(time.Duration(t.Microseconds) * time.Microsecond)
	return &c
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
