// provisioner ensures an Employee record exists for the user holding a given
// employee number, inserting one with the configured field values when absent.
//
// Usage: go run ./cmd/provisioner [employee-number]
// The employee number defaults to PROVISION_EMPLOYEE_NUMBER (or "1001").
// Exit status: 0 = created or already existed, 1 = user not found or failure.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/hr-provisioner/internal/application/provision"
	"github.com/jhoicas/hr-provisioner/internal/infrastructure/postgres"
	"github.com/jhoicas/hr-provisioner/pkg/config"
	"github.com/jhoicas/hr-provisioner/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run carries the whole sequence so deferred cleanup (pool.Close) executes on
// every exit path before os.Exit.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		return 1
	}

	// Optional positional argument overrides the configured employee number.
	if len(args) > 0 && args[0] != "" {
		cfg.Provision.EmployeeNumber = args[0]
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("app", cfg.App.Name).
		Str("employee_number", cfg.Provision.EmployeeNumber).
		Msg("provisioning employee")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("connect to PostgreSQL")
		return 1
	}
	defer pool.Close()

	uc := provision.NewUseCase(postgres.NewTxRunner(pool))
	res, err := uc.Provision(ctx, specFromConfig(cfg.Provision))

	report(log, res, err)
	return exitCode(res, err)
}

func specFromConfig(p config.ProvisionConfig) provision.EmployeeSpec {
	return provision.EmployeeSpec{
		EmployeeNumber: p.EmployeeNumber,
		JobCategory:    p.JobCategory,
		AgreementType:  p.AgreementType,
		EmploymentDate: p.EmploymentDate,
		WorkTimeType:   p.WorkTimeType,
		BaseSalary:     p.BaseSalary,
		Department:     p.Department,
		Location:       p.Location,
	}
}

// report logs one line per outcome, mirroring the progress reporting of the
// original data fix.
func report(log *logger.Logger, res provision.Result, err error) {
	switch {
	case err != nil:
		log.Error().Err(err).Msg("provisioning failed")
	case res.Outcome == provision.OutcomeUserNotFound:
		log.Error().Msg("user not found")
	case res.Outcome == provision.OutcomeAlreadyExists:
		log.Info().
			Str("user", res.User.Name).
			Str("employee_id", res.Employee.ID).
			Msg("user already has an employee")
	default:
		log.Info().
			Str("user", res.User.Name).
			Str("employee_id", res.Employee.ID).
			Msg("employee created")
	}
}

// exitCode maps the provisioning result to the process exit status:
// created and already-exists succeed, user-not-found and failures do not.
func exitCode(res provision.Result, err error) int {
	if err != nil || res.Outcome == provision.OutcomeUserNotFound {
		return 1
	}
	return 0
}
