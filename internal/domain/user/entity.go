package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage operators and pay profiles
	RoleOperator Role = "operator" // Can run reports and trigger syncs
)

// User is a back-office operator account. Operators are staff who run
// reports; they are unrelated to the ERP employee roster.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can manage accounts and pay profiles
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
