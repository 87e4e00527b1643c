package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/config"
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	"github.com/wavepark/shift-manager/internal/repository/memstore"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

func strPtr(s string) *string { return &s }
func idPtr(id int64) *int64   { return &id }

func assertStatus(t *testing.T, err error, status int) *apperrors.DomainError {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("err = %v, want DomainError with status %d", err, status)
	}
	if domainErr.HTTPStatus != status {
		t.Fatalf("status = %d (%s), want %d", domainErr.HTTPStatus, domainErr.Message, status)
	}
	return domainErr
}

var adminConfig = config.AdminConfig{
	Email:    "admin@wavepark.local",
	Password: "ChangeMe123!",
	FullName: "Wavepark Administrator",
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := memstore.New().Users()

	first, err := EnsureAdmin(ctx, users, adminConfig, bcrypt.MinCost, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	second, err := EnsureAdmin(ctx, users, adminConfig, bcrypt.MinCost, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	all, _ := users.List(ctx)
	if len(all) != 1 {
		t.Fatalf("users = %d, want 1", len(all))
	}
	if first.PasswordHash != second.PasswordHash || all[0].Role != domain.RoleAdmin {
		t.Fatalf("admin changed between runs: %+v vs %+v", first, second)
	}
	if !auth.VerifyPassword(all[0].PasswordHash, adminConfig.Password) {
		t.Fatal("stored hash does not match configured password")
	}
}

func TestEnsureAdminLeavesExistingAccount(t *testing.T) {
	ctx := context.Background()
	users := memstore.New().Users()
	existing := domain.User{Email: adminConfig.Email, FullName: "Someone", Role: domain.RoleViewer, PasswordHash: "kept"}
	if err := users.Create(ctx, &existing); err != nil {
		t.Fatal(err)
	}

	got, err := EnsureAdmin(ctx, users, adminConfig, bcrypt.MinCost, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != domain.RoleViewer || got.PasswordHash != "kept" {
		t.Fatalf("existing account modified: %+v", got)
	}
}

type countingThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (c *countingThrottle) Allow(context.Context, string) bool { return !c.blocked }
func (c *countingThrottle) Fail(context.Context, string)       { c.failures++ }
func (c *countingThrottle) Reset(context.Context, string)      { c.resets++ }

func newAuthService(t *testing.T, throttle auth.LoginThrottle) (*AuthService, *auth.TokenManager) {
	t.Helper()
	store := memstore.New()
	if _, err := EnsureAdmin(context.Background(), store.Users(), adminConfig, bcrypt.MinCost, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	tokens, err := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewAuthService(AuthDependencies{UserRepo: store.Users(), Tokens: tokens, Throttle: throttle}), tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	throttle := &countingThrottle{}
	svc, tokens := newAuthService(t, throttle)

	result, err := svc.Login(ctx, adminConfig.Email, adminConfig.Password)
	if err != nil {
		t.Fatal(err)
	}
	identity, err := tokens.Verify(result.AccessToken, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if identity.UserID != result.User.ID || identity.Role != domain.RoleAdmin {
		t.Fatalf("identity = %+v", identity)
	}
	if throttle.resets != 1 {
		t.Fatalf("resets = %d", throttle.resets)
	}

	for _, creds := range [][2]string{
		{adminConfig.Email, "wrong"},
		{"nobody@wavepark.local", adminConfig.Password},
		{"ADMIN@wavepark.local", adminConfig.Password},
	} {
		_, err := svc.Login(ctx, creds[0], creds[1])
		domainErr := assertStatus(t, err, http.StatusBadRequest)
		if domainErr.Message != "Incorrect email or password" {
			t.Fatalf("message = %q", domainErr.Message)
		}
	}
	if throttle.failures != 3 {
		t.Fatalf("failures = %d", throttle.failures)
	}

	_, err = svc.Login(ctx, "", "")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLoginThrottled(t *testing.T) {
	svc, _ := newAuthService(t, &countingThrottle{blocked: true})
	_, err := svc.Login(context.Background(), adminConfig.Email, adminConfig.Password)
	assertStatus(t, err, http.StatusTooManyRequests)
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memstore.New().Users(), bcrypt.MinCost)

	user, err := svc.Create(ctx, UserInput{Email: "m@wavepark.local", FullName: "Mia", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != domain.RoleManager || user.PasswordHash == "pw" {
		t.Fatalf("user = %+v", user)
	}

	_, err = svc.Create(ctx, UserInput{Email: "m@wavepark.local", FullName: "Other", Password: "pw"})
	if domainErr := assertStatus(t, err, http.StatusBadRequest); domainErr.Message != "Email already registered" {
		t.Fatalf("message = %q", domainErr.Message)
	}

	_, err = svc.Create(ctx, UserInput{Email: "not-an-email", FullName: " ", Password: "", Role: "owner"})
	domainErr := assertStatus(t, err, http.StatusBadRequest)
	for _, field := range []string{"email", "full_name", "password", "role"} {
		if _, ok := domainErr.Details[field]; !ok {
			t.Errorf("missing detail for %s: %v", field, domainErr.Details)
		}
	}
}

func TestUserCreateRejectsOverlongPassword(t *testing.T) {
	ctx := context.Background()
	users := memstore.New().Users()
	svc := NewUserService(users, bcrypt.MinCost)

	_, err := svc.Create(ctx, UserInput{Email: "long@wavepark.local", FullName: "Long", Password: strings.Repeat("a", 73)})
	domainErr := assertStatus(t, err, http.StatusBadRequest)
	if _, ok := domainErr.Details["password"]; !ok {
		t.Fatalf("details = %v", domainErr.Details)
	}
	if list, _ := users.List(ctx); len(list) != 0 {
		t.Fatalf("stored %d users", len(list))
	}

	if _, err := svc.Create(ctx, UserInput{Email: "long@wavepark.local", FullName: "Long", Password: strings.Repeat("a", 72)}); err != nil {
		t.Fatalf("72 byte password: %v", err)
	}
}

func TestEmployeeReplaceOverwritesEveryField(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memstore.New().Employees())

	created, err := svc.Create(ctx, EmployeeInput{FirstName: "Ava", LastName: "Marin", Position: strPtr("Lifeguard"), Phone: strPtr("555")})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Replace(ctx, created.ID, EmployeeInput{FirstName: "Ava"})
	assertStatus(t, err, http.StatusBadRequest)

	replaced, err := svc.Replace(ctx, created.ID, EmployeeInput{FirstName: "Ava", LastName: "Marin"})
	if err != nil {
		t.Fatal(err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].Position != nil || list[0].Phone != nil || replaced.ID != created.ID {
		t.Fatalf("omitted fields should be cleared: %+v", list)
	}

	_, err = svc.Replace(ctx, 999, EmployeeInput{FirstName: "A", LastName: "B"})
	if domainErr := assertStatus(t, err, http.StatusNotFound); domainErr.Message != "Employee not found" {
		t.Fatalf("message = %q", domainErr.Message)
	}
	assertStatus(t, svc.Delete(ctx, 999), http.StatusNotFound)
}

func TestTaskService(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(memstore.New().Tasks())

	_, err := svc.Create(ctx, TaskInput{})
	assertStatus(t, err, http.StatusBadRequest)

	task, err := svc.Create(ctx, TaskInput{Name: "First aid", CertificationRequired: strPtr("EMT")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Replace(ctx, task.ID, TaskInput{Name: "First aid"}); err != nil {
		t.Fatal(err)
	}
	list, _ := svc.List(ctx)
	if list[0].CertificationRequired != nil {
		t.Fatalf("replace should clear certification: %+v", list[0])
	}
	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatal(err)
	}
	assertStatus(t, svc.Delete(ctx, task.ID), http.StatusNotFound)
}

func TestShiftService(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(memstore.New().Shifts())
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.Create(ctx, ShiftInput{Name: "Morning", Location: "Main Pool", StartsAt: &start})
	assertStatus(t, err, http.StatusBadRequest)

	shift, err := svc.Create(ctx, ShiftInput{Name: "Morning", Location: "Main Pool", StartsAt: &start, EndsAt: &end})
	if err != nil {
		t.Fatalf("end before start must be accepted: %v", err)
	}
	if shift.RequiredStaff != domain.DefaultRequiredStaff {
		t.Fatalf("required staff = %d", shift.RequiredStaff)
	}

	three := 3
	if _, err := svc.Replace(ctx, shift.ID, ShiftInput{Name: "Morning", Location: "Slides", StartsAt: &start, EndsAt: &end, RequiredStaff: &three}); err != nil {
		t.Fatal(err)
	}
	negative := -1
	_, err = svc.Replace(ctx, shift.ID, ShiftInput{Name: "Morning", Location: "Slides", StartsAt: &start, EndsAt: &end, RequiredStaff: &negative})
	assertStatus(t, err, http.StatusBadRequest)

	list, _ := svc.List(ctx, repository.ShiftFilter{})
	if len(list) != 1 || list[0].Location != "Slides" || list[0].RequiredStaff != 3 {
		t.Fatalf("list = %+v", list)
	}
}

type assignmentFixture struct {
	store    *memstore.Store
	svc      *AssignmentService
	shift    *domain.Shift
	employee *domain.Employee
	task     *domain.Task
}

func newAssignmentFixture(t *testing.T) assignmentFixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	shift, err := NewShiftService(store.Shifts()).Create(ctx, ShiftInput{Name: "Morning", Location: "Main Pool", StartsAt: &start, EndsAt: &end})
	if err != nil {
		t.Fatal(err)
	}
	employee, err := NewEmployeeService(store.Employees()).Create(ctx, EmployeeInput{FirstName: "Ava", LastName: "Marin"})
	if err != nil {
		t.Fatal(err)
	}
	task, err := NewTaskService(store.Tasks()).Create(ctx, TaskInput{Name: "Tower watch"})
	if err != nil {
		t.Fatal(err)
	}
	return assignmentFixture{store: store, svc: NewAssignmentService(store.Assignments()), shift: shift, employee: employee, task: task}
}

func TestAssignmentCreateWithMissingEmployeePersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newAssignmentFixture(t)

	_, err := f.svc.Create(ctx, AssignmentInput{ShiftID: &f.shift.ID, EmployeeID: idPtr(999)})
	if domainErr := assertStatus(t, err, http.StatusBadRequest); domainErr.Message != "Shift or employee not found" {
		t.Fatalf("message = %q", domainErr.Message)
	}
	_, err = f.svc.Create(ctx, AssignmentInput{ShiftID: &f.shift.ID, EmployeeID: &f.employee.ID, TaskID: idPtr(999)})
	if domainErr := assertStatus(t, err, http.StatusBadRequest); domainErr.Message != "Task not found" {
		t.Fatalf("message = %q", domainErr.Message)
	}
	_, err = f.svc.Create(ctx, AssignmentInput{EmployeeID: &f.employee.ID})
	assertStatus(t, err, http.StatusBadRequest)

	list, err := f.svc.List(ctx, repository.AssignmentFilter{})
	if err != nil || len(list) != 0 {
		t.Fatalf("list = %+v, %v", list, err)
	}
}

func TestAssignmentPatchOnlyTouchesGivenFields(t *testing.T) {
	ctx := context.Background()
	f := newAssignmentFixture(t)
	in := domain.ClockTime{Hour: 7, Minute: 55}

	created, err := f.svc.Create(ctx, AssignmentInput{
		ShiftID:     &f.shift.ID,
		EmployeeID:  &f.employee.ID,
		TaskID:      &f.task.ID,
		Note:        strPtr("first"),
		CheckInTime: &in,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.Task == nil || created.Employee.LastName != "Marin" {
		t.Fatalf("detail not loaded: %+v", created)
	}

	patched, err := f.svc.Patch(ctx, created.ID, domain.AssignmentPatch{Note: strPtr("x")})
	if err != nil {
		t.Fatal(err)
	}
	if *patched.Note != "x" {
		t.Fatalf("note = %q", *patched.Note)
	}
	if patched.ShiftID != created.ShiftID || patched.EmployeeID != created.EmployeeID ||
		*patched.TaskID != *created.TaskID || *patched.CheckInTime != in || patched.CheckOutTime != nil {
		t.Fatalf("untouched fields changed: %+v", patched.ShiftAssignment)
	}

	_, err = f.svc.Patch(ctx, created.ID, domain.AssignmentPatch{ShiftID: idPtr(999)})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = f.svc.Patch(ctx, 999, domain.AssignmentPatch{Note: strPtr("y")})
	if domainErr := assertStatus(t, err, http.StatusNotFound); domainErr.Message != "Assignment not found" {
		t.Fatalf("message = %q", domainErr.Message)
	}

	if err := f.svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	assertStatus(t, f.svc.Delete(ctx, created.ID), http.StatusNotFound)
}

func TestReportServiceFiltersByShiftWindow(t *testing.T) {
	ctx := context.Background()
	f := newAssignmentFixture(t)
	if _, err := f.svc.Create(ctx, AssignmentInput{ShiftID: &f.shift.ID, EmployeeID: &f.employee.ID}); err != nil {
		t.Fatal(err)
	}
	reports := NewReportService(f.store.Assignments())

	all, err := reports.AssignmentsCSV(ctx, repository.ShiftFilter{})
	if err != nil {
		t.Fatal(err)
	}
	later := f.shift.StartsAt.Add(time.Hour)
	none, err := reports.AssignmentsCSV(ctx, repository.ShiftFilter{Start: &later})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) <= len(none) {
		t.Fatalf("filter had no effect: %q vs %q", all, none)
	}

	xlsx, err := reports.AssignmentsXLSX(ctx, repository.ShiftFilter{})
	if err != nil || len(xlsx) == 0 {
		t.Fatalf("xlsx = %d bytes, %v", len(xlsx), err)
	}
}
