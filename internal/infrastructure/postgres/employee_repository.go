package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hr-provisioner/internal/domain"
	"github.com/jhoicas/hr-provisioner/internal/domain/entity"
	"github.com/jhoicas/hr-provisioner/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements the EmployeeRepository port over PostgreSQL (pool or tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the employee persistence adapter. Pass pool or tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persists a new employee. The unique constraint on user_id surfaces
// as domain.ErrEmployeeAlreadyExists.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, employee_number, job_category, agreement_type,
		                       employment_date, work_time_type, base_salary, department, location,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeNumber, emp.JobCategory, emp.AgreementType,
		emp.EmploymentDate, emp.WorkTimeType, emp.BaseSalary, emp.Department, emp.Location,
		emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByUserID fetches the employee linked to a user. Returns (nil, nil) when none exists.
func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	query := `
		SELECT id, user_id, employee_number, job_category, agreement_type, employment_date,
		       work_time_type, base_salary, department, location, created_at, updated_at
		FROM employees WHERE user_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.EmployeeNumber, &e.JobCategory, &e.AgreementType, &e.EmploymentDate,
		&e.WorkTimeType, &e.BaseSalary, &e.Department, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return &e, nil
}
