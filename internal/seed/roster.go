// Package seed loads the default lifeguard roster.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

func opt(s string) *string { return &s }

// Lifeguards is the default roster. First and last name identify an entry.
var Lifeguards = []service.EmployeeInput{
	{FirstName: "Avery", LastName: "Brooks", Position: opt("Head Lifeguard"), Phone: opt("555-0101"), Notes: opt("experience: expert | role: head")},
	{FirstName: "Jordan", LastName: "Nguyen", Position: opt("Rescue Specialist"), Phone: opt("555-0102"), Notes: opt("experience: expert | role: rescue")},
	{FirstName: "Maya", LastName: "Lopez", Position: opt("Safety Checker"), Phone: opt("555-0103"), Notes: opt("experience: medium | role: check")},
	{FirstName: "Liam", LastName: "Harper", Position: opt("Support Crew"), Phone: opt("555-0104"), Notes: opt("experience: medium | role: support")},
	{FirstName: "Nora", LastName: "Kim", Position: opt("Part-time Lifeguard"), Phone: opt("555-0105"), Notes: opt("experience: easy | role: parttime")},
	{FirstName: "Eli", LastName: "Sanchez", Position: opt("Rescue Trainee"), Phone: opt("555-0106"), Notes: opt("experience: easy | role: rescue")},
	{FirstName: "Priya", LastName: "Patel", Position: opt("Support Crew"), Phone: opt("555-0107"), Notes: opt("experience: medium | role: support")},
	{FirstName: "Kai", LastName: "Morgan", Position: opt("Safety Checker"), Phone: opt("555-0108"), Notes: opt("experience: expert | role: check")},
}

// EnsureRoster creates missing roster entries and refreshes position, phone
// and notes of existing ones. Employees outside the roster are untouched.
func EnsureRoster(ctx context.Context, employees *service.EmployeeService, roster []service.EmployeeInput, logger *zap.Logger) ([]domain.Employee, error) {
	current, err := employees.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[[2]string]domain.Employee, len(current))
	for _, e := range current {
		key := [2]string{e.FirstName, e.LastName}
		if _, seen := byName[key]; !seen {
			byName[key] = e
		}
	}

	result := make([]domain.Employee, 0, len(roster))
	for _, input := range roster {
		existing, ok := byName[[2]string{input.FirstName, input.LastName}]
		switch {
		case !ok:
			created, err := employees.Create(ctx, input)
			if err != nil {
				return nil, err
			}
			logger.Info("employee created", zap.String("name", created.FullName()), zap.Int64("id", created.ID))
			result = append(result, *created)
		case sameDetails(existing, input):
			result = append(result, existing)
		default:
			updated, err := employees.Replace(ctx, existing.ID, input)
			if err != nil {
				return nil, err
			}
			logger.Info("employee updated", zap.String("name", updated.FullName()), zap.Int64("id", updated.ID))
			result = append(result, *updated)
		}
	}
	return result, nil
}

func sameDetails(e domain.Employee, in service.EmployeeInput) bool {
	return equalOpt(e.Position, in.Position) && equalOpt(e.Phone, in.Phone) && equalOpt(e.Notes, in.Notes)
}

func equalOpt(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
