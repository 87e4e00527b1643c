// Package memstore keeps every repository in process memory. It applies the
// same referential rules as the Postgres schema and backs tests and local
// runs without a database.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
)

// Store holds all tables behind one lock.
type Store struct {
	mu sync.RWMutex

	nextID      map[string]int64
	users       map[int64]domain.User
	employees   map[int64]domain.Employee
	tasks       map[int64]domain.Task
	shifts      map[int64]domain.Shift
	assignments map[int64]domain.ShiftAssignment
}

// New returns an empty store.
func New() *Store {
	return &Store{
		nextID:      map[string]int64{},
		users:       map[int64]domain.User{},
		employees:   map[int64]domain.Employee{},
		tasks:       map[int64]domain.Task{},
		shifts:      map[int64]domain.Shift{},
		assignments: map[int64]domain.ShiftAssignment{},
	}
}

func (s *Store) Users() repository.UserRepository             { return userRepo{s} }
func (s *Store) Employees() repository.EmployeeRepository     { return employeeRepo{s} }
func (s *Store) Tasks() repository.TaskRepository             { return taskRepo{s} }
func (s *Store) Shifts() repository.ShiftRepository           { return shiftRepo{s} }
func (s *Store) Assignments() repository.AssignmentRepository { return assignmentRepo{s} }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedIDs[T any](rows map[int64]T) []int64 {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = r.s.allocate("user")
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.users) {
		if user := r.s.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r userRepo) List(context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.User{}
	for _, id := range sortedIDs(r.s.users) {
		result = append(result, r.s.users[id])
	}
	return result, nil
}

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	employee.ID = r.s.allocate("employee")
	r.s.employees[employee.ID] = *employee
	return nil
}

func (r employeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.s.employees[employee.ID] = *employee
	return nil
}

func (r employeeRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.employees, id)
	for aid, a := range r.s.assignments {
		if a.EmployeeID == id {
			delete(r.s.assignments, aid)
		}
	}
	return nil
}

func (r employeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	employee, ok := r.s.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &employee, nil
}

func (r employeeRepo) List(context.Context) ([]domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Employee{}
	for _, id := range sortedIDs(r.s.employees) {
		result = append(result, r.s.employees[id])
	}
	return result, nil
}

type taskRepo struct{ s *Store }

func (r taskRepo) Create(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	task.ID = r.s.allocate("task")
	r.s.tasks[task.ID] = *task
	return nil
}

func (r taskRepo) Update(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[task.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.s.tasks[task.ID] = *task
	return nil
}

func (r taskRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.tasks, id)
	for aid, a := range r.s.assignments {
		if a.TaskID != nil && *a.TaskID == id {
			a.TaskID = nil
			r.s.assignments[aid] = a
		}
	}
	return nil
}

func (r taskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	task, ok := r.s.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &task, nil
}

func (r taskRepo) List(context.Context) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Task{}
	for _, id := range sortedIDs(r.s.tasks) {
		result = append(result, r.s.tasks[id])
	}
	return result, nil
}

type shiftRepo struct{ s *Store }

func (r shiftRepo) Create(_ context.Context, shift *domain.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	shift.ID = r.s.allocate("shift")
	r.s.shifts[shift.ID] = *shift
	return nil
}

func (r shiftRepo) Update(_ context.Context, shift *domain.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shifts[shift.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.s.shifts[shift.ID] = *shift
	return nil
}

func (r shiftRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shifts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.shifts, id)
	for aid, a := range r.s.assignments {
		if a.ShiftID == id {
			delete(r.s.assignments, aid)
		}
	}
	return nil
}

func (r shiftRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	shift, ok := r.s.shifts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &shift, nil
}

func (r shiftRepo) List(_ context.Context, filter repository.ShiftFilter) ([]domain.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Shift{}
	for _, id := range sortedIDs(r.s.shifts) {
		if shift := r.s.shifts[id]; filter.Matches(shift) {
			result = append(result, shift)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartsAt.Before(result[j].StartsAt)
	})
	return result, nil
}

type assignmentRepo struct{ s *Store }

func (r assignmentRepo) Create(_ context.Context, assignment *domain.ShiftAssignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkReferences(assignment); err != nil {
		return err
	}
	assignment.ID = r.s.allocate("shiftassignment")
	r.s.assignments[assignment.ID] = *assignment
	return nil
}

func (r assignmentRepo) Patch(_ context.Context, id int64, patch domain.AssignmentPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.assignments[id]
	if !ok {
		return pgx.ErrNoRows
	}
	patch.Apply(&current)
	if err := r.checkReferences(&current); err != nil {
		return err
	}
	r.s.assignments[id] = current
	return nil
}

func (r assignmentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.assignments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.assignments, id)
	return nil
}

func (r assignmentRepo) GetByID(_ context.Context, id int64) (*domain.AssignmentDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.assignments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	detail := r.detail(a)
	return &detail, nil
}

func (r assignmentRepo) List(_ context.Context, filter repository.AssignmentFilter) ([]domain.AssignmentDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.AssignmentDetail{}
	for _, id := range sortedIDs(r.s.assignments) {
		detail := r.detail(r.s.assignments[id])
		if filter.Shift.Matches(detail.Shift) {
			result = append(result, detail)
		}
	}
	return result, nil
}

// checkReferences must be called with the write lock held.
func (r assignmentRepo) checkReferences(a *domain.ShiftAssignment) error {
	if _, ok := r.s.shifts[a.ShiftID]; !ok {
		return &repository.MissingReferenceError{Entity: "shift", ID: a.ShiftID}
	}
	if _, ok := r.s.employees[a.EmployeeID]; !ok {
		return &repository.MissingReferenceError{Entity: "employee", ID: a.EmployeeID}
	}
	if a.TaskID != nil {
		if _, ok := r.s.tasks[*a.TaskID]; !ok {
			return &repository.MissingReferenceError{Entity: "task", ID: *a.TaskID}
		}
	}
	return nil
}

func (r assignmentRepo) detail(a domain.ShiftAssignment) domain.AssignmentDetail {
	detail := domain.AssignmentDetail{
		ShiftAssignment: a,
		Shift:           r.s.shifts[a.ShiftID],
		Employee:        r.s.employees[a.EmployeeID],
	}
	if a.TaskID != nil {
		if task, ok := r.s.tasks[*a.TaskID]; ok {
			detail.Task = &task
		}
	}
	return detail
}
