package domain

import "time"

// UserRole distinguishes administrators from regular customers.
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleCustomer UserRole = "CUSTOMER"
)

// User is the domain model for registered accounts. PasswordHash never
// leaves the service boundary; responses are built from dto.UserResponse.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
