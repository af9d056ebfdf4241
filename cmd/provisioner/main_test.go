package main

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/hr-provisioner/internal/application/provision"
	"github.com/jhoicas/hr-provisioner/pkg/config"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		res  provision.Result
		err  error
		want int
	}{
		{"created", provision.Result{Outcome: provision.OutcomeCreated}, nil, 0},
		{"already exists", provision.Result{Outcome: provision.OutcomeAlreadyExists}, nil, 0},
		{"user not found", provision.Result{Outcome: provision.OutcomeUserNotFound}, nil, 1},
		{"operational failure", provision.Result{}, errors.New("connection refused"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCode(tc.res, tc.err))
		})
	}
}

func TestSpecFromConfig(t *testing.T) {
	p := config.ProvisionConfig{
		EmployeeNumber: "1001",
		JobCategory:    "DRIVER",
		AgreementType:  "3F",
		EmploymentDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WorkTimeType:   "FULL_TIME",
		BaseSalary:     decimal.NewFromInt(25000),
		Department:     "Transport",
		Location:       "København",
	}

	spec := specFromConfig(p)

	assert.Equal(t, p.EmployeeNumber, spec.EmployeeNumber)
	assert.Equal(t, p.JobCategory, spec.JobCategory)
	assert.Equal(t, p.AgreementType, spec.AgreementType)
	assert.Equal(t, p.EmploymentDate, spec.EmploymentDate)
	assert.Equal(t, p.WorkTimeType, spec.WorkTimeType)
	assert.True(t, spec.BaseSalary.Equal(p.BaseSalary))
	assert.Equal(t, p.Department, spec.Department)
	assert.Equal(t, p.Location, spec.Location)
	assert.NoError(t, spec.Validate())
}
