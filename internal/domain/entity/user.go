package entity

import "time"

// Valid User statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User is a pre-existing account record, identified by its unique employee number.
// This tool only reads users; they are created elsewhere.
type User struct {
	ID             string
	EmployeeNumber string
	Name           string
	Email          string
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
