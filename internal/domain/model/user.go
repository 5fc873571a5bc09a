package model

import "time"

// Role distinguishes regular students from canteen staff.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// User represents a campus account. Accounts are created implicitly on the
// first login with an unseen email and are never deleted.
type User struct {
	ID        int64
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// IsStaff reports whether the user may access staff operations.
func (u *User) IsStaff() bool {
	return u != nil && u.Role == RoleStaff
}
