package domain

// Employee is a staff member who can be assigned to shifts.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Position  *string
	Phone     *string
	Notes     *string
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
