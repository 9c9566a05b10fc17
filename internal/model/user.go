package model

// UserRole enumerates platform roles.
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleInstructor UserRole = "instructor"
	UserRoleAdmin      UserRole = "admin"
)

// User represents a platform user (listener or staff).
type User struct {
	ID         int64    `json:"id"`
	FullName   string   `json:"full_name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Role       UserRole `json:"role"`
	Email      *string  `json:"email"`
}
