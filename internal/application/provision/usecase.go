package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hr-provisioner/internal/domain"
	"github.com/jhoicas/hr-provisioner/internal/domain/entity"
	"github.com/jhoicas/hr-provisioner/internal/domain/repository"
)

// TxRunner executes fn with repositories bound to a single transaction.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		employees repository.EmployeeRepository,
	) error) error
}

// Outcome names the result of a provisioning attempt. Not-found and
// already-exists are outcomes, not errors: only operational failures
// travel the error path.
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeAlreadyExists Outcome = "already_exists"
	OutcomeUserNotFound  Outcome = "user_not_found"
)

// Result of a provisioning attempt. Employee is set for Created and
// AlreadyExists; User is set whenever the target user was found.
type Result struct {
	Outcome  Outcome
	User     *entity.User
	Employee *entity.Employee
}

// EmployeeSpec is the field set for the employee to provision.
type EmployeeSpec struct {
	EmployeeNumber string
	JobCategory    string
	AgreementType  string
	EmploymentDate time.Time
	WorkTimeType   string
	BaseSalary     decimal.Decimal
	Department     string
	Location       string
}

// Validate rejects specs that cannot produce a well-formed employee row.
func (s EmployeeSpec) Validate() error {
	if s.EmployeeNumber == "" {
		return fmt.Errorf("%w: employee number is required", domain.ErrInvalidInput)
	}
	if s.EmploymentDate.IsZero() {
		return fmt.Errorf("%w: employment date is required", domain.ErrInvalidInput)
	}
	if s.BaseSalary.IsNegative() {
		return fmt.Errorf("%w: base salary must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// UseCase ensures an Employee exists for the user holding a given
// employee number, inserting at most one row per invocation.
type UseCase struct {
	tx TxRunner
}

// NewUseCase builds the provisioning use case.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// Provision looks the user up by employee number (linked employee fetched in
// the same query), and inserts a new employee from spec when none exists.
// Check and insert run inside one transaction; losing an insert race to a
// concurrent run yields OutcomeAlreadyExists, never a duplicate row.
func (uc *UseCase) Provision(ctx context.Context, spec EmployeeSpec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	err := uc.tx.Run(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository) error {
		user, existing, err := users.GetByEmployeeNumber(ctx, spec.EmployeeNumber)
		if err != nil {
			return err
		}
		if user == nil {
			res = Result{Outcome: OutcomeUserNotFound}
			return nil
		}
		if existing != nil {
			res = Result{Outcome: OutcomeAlreadyExists, User: user, Employee: existing}
			return nil
		}

		emp := newEmployee(user, spec)
		if err := employees.Create(ctx, emp); err != nil {
			return err
		}
		res = Result{Outcome: OutcomeCreated, User: user, Employee: emp}
		return nil
	})
	if errors.Is(err, domain.ErrEmployeeAlreadyExists) {
		// Lost the race to a concurrent run: the transaction rolled back,
		// so fetch the winner's row in a fresh one.
		return uc.existing(ctx, spec.EmployeeNumber)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (uc *UseCase) existing(ctx context.Context, employeeNumber string) (Result, error) {
	var res Result
	err := uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.EmployeeRepository) error {
		user, emp, err := users.GetByEmployeeNumber(ctx, employeeNumber)
		if err != nil {
			return err
		}
		if user == nil || emp == nil {
			return fmt.Errorf("employee vanished after unique violation for %q", employeeNumber)
		}
		res = Result{Outcome: OutcomeAlreadyExists, User: user, Employee: emp}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func newEmployee(user *entity.User, spec EmployeeSpec) *entity.Employee {
	now := time.Now().UTC()
	return &entity.Employee{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		EmployeeNumber: spec.EmployeeNumber,
		JobCategory:    spec.JobCategory,
		AgreementType:  spec.AgreementType,
		EmploymentDate: spec.EmploymentDate,
		WorkTimeType:   spec.WorkTimeType,
		BaseSalary:     spec.BaseSalary,
		Department:     spec.Department,
		Location:       spec.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
