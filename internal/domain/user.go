package domain

// Role enumerates what a user may do. Checks are plain set membership,
// no role implies another.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// User is an account able to sign in to the API.
type User struct {
	ID           int64
	Email        string
	FullName     string
	Role         Role
	PasswordHash string
}
