package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the repositories translate.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// ErrDuplicateEmail is returned when a user email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// MissingReferenceError reports that a referenced row does not exist.
type MissingReferenceError struct {
	Entity string
	ID     int64
}

func (e *MissingReferenceError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("referenced %s not found", e.Entity)
	}
	return fmt.Sprintf("referenced %s %d not found", e.Entity, e.ID)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateForeignKey maps a foreign key violation on shiftassignment to a
// MissingReferenceError. Other errors are returned unchanged.
func translateForeignKey(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return err
	}
	entity := "row"
	switch pgErr.ConstraintName {
	case "shiftassignment_shift_id_fkey":
		entity = "shift"
	case "shiftassignment_employee_id_fkey":
		entity = "employee"
	case "shiftassignment_task_id_fkey":
		entity = "task"
	}
	return &MissingReferenceError{Entity: entity}
}
