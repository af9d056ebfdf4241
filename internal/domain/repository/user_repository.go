package repository

import (
	"context"

	"github.com/jhoicas/hr-provisioner/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
type UserRepository interface {
	// GetByEmployeeNumber fetches the user and any linked employee in a single query.
	// Returns (nil, nil, nil) when no user matches.
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*entity.User, *entity.Employee, error)
}
