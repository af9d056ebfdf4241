package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hr-provisioner/internal/domain/entity"
	"github.com/jhoicas/hr-provisioner/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL (pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the user persistence adapter. Pass pool or tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByEmployeeNumber fetches the user and any linked employee in one LEFT JOIN
// query. Returns (nil, nil, nil) when no user holds the employee number.
func (r *UserRepo) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*entity.User, *entity.Employee, error) {
	query := `
		SELECT u.id, u.employee_number, u.name, u.email, u.status, u.created_at, u.updated_at,
		       e.id, e.employee_number, e.job_category, e.agreement_type, e.employment_date,
		       e.work_time_type, e.base_salary, e.department, e.location, e.created_at, e.updated_at
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.employee_number = $1`

	var u entity.User
	var (
		empID          *string
		empNumber      *string
		jobCategory    *string
		agreementType  *string
		employmentDate *time.Time
		workTimeType   *string
		baseSalary     *decimal.Decimal
		department     *string
		location       *string
		createdAt      *time.Time
		updatedAt      *time.Time
	)
	err := r.q.QueryRow(ctx, query, employeeNumber).Scan(
		&u.ID, &u.EmployeeNumber, &u.Name, &u.Email, &u.Status, &u.CreatedAt, &u.UpdatedAt,
		&empID, &empNumber, &jobCategory, &agreementType, &employmentDate,
		&workTimeType, &baseSalary, &department, &location, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get user by employee number: %w", err)
	}
	if empID == nil {
		return &u, nil, nil
	}

	emp := &entity.Employee{
		ID:             *empID,
		UserID:         u.ID,
		EmployeeNumber: deref(empNumber),
		JobCategory:    deref(jobCategory),
		AgreementType:  deref(agreementType),
		WorkTimeType:   deref(workTimeType),
		Department:     deref(department),
		Location:       deref(location),
	}
	if employmentDate != nil {
		emp.EmploymentDate = *employmentDate
	}
	if baseSalary != nil {
		emp.BaseSalary = *baseSalary
	}
	if createdAt != nil {
		emp.CreatedAt = *createdAt
	}
	if updatedAt != nil {
		emp.UpdatedAt = *updatedAt
	}
	return &u, emp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
