package repository

import (
	"context"

	"github.com/jhoicas/hr-provisioner/internal/domain/entity"
)

// EmployeeRepository defines the persistence port for Employee (DIP).
type EmployeeRepository interface {
	// Create persists a new employee. Returns domain.ErrEmployeeAlreadyExists
	// if the user already has one (unique constraint on user_id).
	Create(ctx context.Context, emp *entity.Employee) error
	// GetByUserID returns (nil, nil) when the user has no employee.
	GetByUserID(ctx context.Context, userID string) (*entity.Employee, error)
}
