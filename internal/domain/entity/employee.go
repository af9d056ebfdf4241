package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work-time types for Employee.
const (
	WorkTimeFullTime = "FULL_TIME"
	WorkTimePartTime = "PART_TIME"
)

// Employee is the HR record linked one-to-one with a User.
// At most one Employee per User (unique constraint on user_id).
type Employee struct {
	ID             string
	UserID         string
	EmployeeNumber string
	JobCategory    string    // e.g. DRIVER
	AgreementType  string    // collective agreement short code, e.g. 3F
	EmploymentDate time.Time // date, time component ignored
	WorkTimeType   string    // FULL_TIME, PART_TIME
	BaseSalary     decimal.Decimal
	Department     string
	Location       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
