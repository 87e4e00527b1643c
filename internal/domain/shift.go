package domain

import "time"

// DefaultRequiredStaff applies when a shift is written without a staff count.
const DefaultRequiredStaff = 1

// Shift is a staffed time window at a location. StartsAt < EndsAt is not enforced.
type Shift struct {
	ID            int64
	Name          string
	Location      string
	StartsAt      time.Time
	EndsAt        time.Time
	RequiredStaff int
}
