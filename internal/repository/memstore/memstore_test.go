package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
)

func seed(t *testing.T, s *Store) (domain.Shift, domain.Employee, domain.Task) {
	t.Helper()
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	shift := domain.Shift{Name: "Morning", Location: "Main Pool", StartsAt: start, EndsAt: start.Add(8 * time.Hour), RequiredStaff: 2}
	employee := domain.Employee{FirstName: "Ava", LastName: "Marin"}
	task := domain.Task{Name: "Tower watch"}
	if err := s.Shifts().Create(ctx, &shift); err != nil {
		t.Fatal(err)
	}
	if err := s.Employees().Create(ctx, &employee); err != nil {
		t.Fatal(err)
	}
	if err := s.Tasks().Create(ctx, &task); err != nil {
		t.Fatal(err)
	}
	return shift, employee, task
}

func TestUserEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	first := domain.User{Email: "a@wavepark.local", Role: domain.RoleAdmin}
	if err := users.Create(ctx, &first); err != nil {
		t.Fatal(err)
	}
	dup := domain.User{Email: "a@wavepark.local", Role: domain.RoleViewer}
	if err := users.Create(ctx, &dup); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
	other := domain.User{Email: "A@wavepark.local", Role: domain.RoleViewer}
	if err := users.Create(ctx, &other); err != nil {
		t.Fatalf("emails compare case-sensitively: %v", err)
	}
	if _, err := users.GetByEmail(ctx, "missing@wavepark.local"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v", err)
	}
}

func TestAssignmentCreateRejectsMissingReferences(t *testing.T) {
	ctx := context.Background()
	s := New()
	shift, employee, _ := seed(t, s)
	missing := int64(99)

	cases := map[string]domain.ShiftAssignment{
		"shift":    {ShiftID: missing, EmployeeID: employee.ID},
		"employee": {ShiftID: shift.ID, EmployeeID: missing},
		"task":     {ShiftID: shift.ID, EmployeeID: employee.ID, TaskID: &missing},
	}
	for entity, a := range cases {
		err := s.Assignments().Create(ctx, &a)
		var ref *repository.MissingReferenceError
		if !errors.As(err, &ref) || ref.Entity != entity {
			t.Errorf("%s: err = %v", entity, err)
		}
	}
	list, _ := s.Assignments().List(ctx, repository.AssignmentFilter{})
	if len(list) != 0 {
		t.Fatalf("persisted %d rows", len(list))
	}
}

func TestDeletesCascadeAndClearTask(t *testing.T) {
	ctx := context.Background()
	s := New()
	shift, employee, task := seed(t, s)

	a := domain.ShiftAssignment{ShiftID: shift.ID, EmployeeID: employee.ID, TaskID: &task.ID}
	if err := s.Assignments().Create(ctx, &a); err != nil {
		t.Fatal(err)
	}
	if err := s.Tasks().Delete(ctx, task.ID); err != nil {
		t.Fatal(err)
	}
	got, err := s.Assignments().GetByID(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TaskID != nil || got.Task != nil {
		t.Fatalf("task should be cleared, got %+v", got)
	}

	if err := s.Employees().Delete(ctx, employee.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Assignments().GetByID(ctx, a.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("assignment should cascade, err = %v", err)
	}
	if err := s.Employees().Delete(ctx, employee.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestPatchWithMissingReferenceKeepsRow(t *testing.T) {
	ctx := context.Background()
	s := New()
	shift, employee, _ := seed(t, s)
	note := "lane 3"
	a := domain.ShiftAssignment{ShiftID: shift.ID, EmployeeID: employee.ID, Note: &note}
	if err := s.Assignments().Create(ctx, &a); err != nil {
		t.Fatal(err)
	}

	missing := int64(42)
	err := s.Assignments().Patch(ctx, a.ID, domain.AssignmentPatch{EmployeeID: &missing})
	var ref *repository.MissingReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("err = %v", err)
	}
	got, _ := s.Assignments().GetByID(ctx, a.ID)
	if got.EmployeeID != employee.ID || *got.Note != "lane 3" {
		t.Fatalf("row changed: %+v", got.ShiftAssignment)
	}

	if err := s.Assignments().Patch(ctx, 1000, domain.AssignmentPatch{Note: &note}); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("unknown id err = %v", err)
	}
}

func TestShiftListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	shifts := New().Shifts()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{48, 0, 24} {
		start := base.Add(time.Duration(offset) * time.Hour)
		sh := domain.Shift{Name: "S", Location: "L", StartsAt: start, EndsAt: start.Add(8 * time.Hour)}
		if err := shifts.Create(ctx, &sh); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := shifts.List(ctx, repository.ShiftFilter{})
	if len(all) != 3 || !all[0].StartsAt.Equal(base) || all[2].ID != 1 {
		t.Fatalf("unexpected order: %+v", all)
	}

	from := base.Add(24 * time.Hour)
	to := base.Add(32 * time.Hour)
	window, _ := shifts.List(ctx, repository.ShiftFilter{Start: &from, End: &to})
	if len(window) != 1 || window[0].ID != 3 {
		t.Fatalf("window = %+v", window)
	}
}
