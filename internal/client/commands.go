// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-employee-service/internal/app"
	"github.com/MKhiriev/go-employee-service/internal/workers"
	"github.com/MKhiriev/go-employee-service/models"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// employeeIDArg returns the single positional argument left after flags.
func employeeIDArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		return "", fmt.Errorf("%w: EMPLOYEE_ID", ErrMissingArgument)
	}
	return fs.Arg(0), nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials

	fs := a.newFlagSet("login")
	fs.StringVar(&credentials.Username, "u", "", "username")
	fs.StringVar(&credentials.Password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if credentials.Username == "" || credentials.Password == "" {
		return fmt.Errorf("%w: -u and -p are required", ErrMissingArgument)
	}

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return err
	}
	if err = a.saveToken(token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", credentials.Username)
	return nil
}

func (a *App) logout(_ context.Context, _ []string) error {
	if err := os.Remove(a.tokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}

	a.adapter.SetToken("")
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	if err := fs.Parse(args); err != nil {
		return err
	}
	employeeID, err := employeeIDArg(fs)
	if err != nil {
		return err
	}

	employee, err := a.adapter.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	return a.printJSON(employee)
}

func (a *App) create(ctx context.Context, args []string) error {
	var path string

	fs := a.newFlagSet("create")
	fs.StringVar(&path, "f", "", "JSON file with the employee, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := a.readInput(path)
	if err != nil {
		return err
	}

	var request models.EmployeeRequest
	if err = json.Unmarshal(raw, &request); err != nil {
		return fmt.Errorf("error decoding employee: %w", err)
	}

	if err = a.adapter.CreateEmployee(ctx, request); err != nil {
		return err
	}

	fmt.Fprintln(a.out, app.MsgEmployeeCreated)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	var path string

	fs := a.newFlagSet("update")
	fs.StringVar(&path, "f", "", "JSON file with the changed fields, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	employeeID, err := employeeIDArg(fs)
	if err != nil {
		return err
	}

	raw, err := a.readInput(path)
	if err != nil {
		return err
	}

	var update models.EmployeeUpdate
	if err = json.Unmarshal(raw, &update); err != nil {
		return fmt.Errorf("error decoding update: %w", err)
	}

	if err = a.adapter.UpdateEmployee(ctx, employeeID, update); err != nil {
		return err
	}

	fmt.Fprintln(a.out, app.MsgEmployeeUpdated)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	employeeID, err := employeeIDArg(fs)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, app.MsgEmployeeDeleted)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	filter := models.DepartmentFilter{
		Offset: models.DefaultDepartmentOffset,
		Limit:  models.DefaultDepartmentLimit,
	}

	fs := a.newFlagSet("list")
	fs.StringVar(&filter.Department, "department", "", "department name")
	fs.Int64Var(&filter.Offset, "skip", filter.Offset, "number of employees to skip")
	fs.Int64Var(&filter.Limit, "limit", filter.Limit, "page size (1..100)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if filter.Department == "" {
		return fmt.Errorf("%w: -department", ErrMissingArgument)
	}

	employees, err := a.adapter.ListByDepartment(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(employees)
}

func (a *App) search(ctx context.Context, args []string) error {
	var skill string

	fs := a.newFlagSet("search")
	fs.StringVar(&skill, "skill", "", "skill name, matched exactly")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if skill == "" {
		return fmt.Errorf("%w: -skill", ErrMissingArgument)
	}

	employees, err := a.adapter.SearchBySkill(ctx, skill)
	if err != nil {
		return err
	}
	return a.printJSON(employees)
}

func (a *App) averageSalary(ctx context.Context, _ []string) error {
	averages, err := a.adapter.AverageSalaryByDepartment(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(averages)
}

func (a *App) health(ctx context.Context, _ []string) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "ok")
	return nil
}

// importEmployees creates every employee of a JSON array, at most
// importConcurrency requests at a time. A failed employee does not stop the
// others; the failures are reported together once all requests finished.
func (a *App) importEmployees(ctx context.Context, args []string) error {
	var path string

	fs := a.newFlagSet("import")
	fs.StringVar(&path, "f", "", "JSON file with an array of employees, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := a.readInput(path)
	if err != nil {
		return err
	}

	var requests []models.EmployeeRequest
	if err = json.Unmarshal(raw, &requests); err != nil {
		return fmt.Errorf("error decoding employees: %w", err)
	}

	pool := workers.NewWorkers(a.importConcurrency)
	for i, request := range requests {
		pool.Add(workers.WorkerFunc(func(ctx context.Context) error {
			if err := a.adapter.CreateEmployee(ctx, request); err != nil {
				return fmt.Errorf("employee #%d (%s): %w", i, importLabel(request), err)
			}
			return nil
		}))
	}

	result := pool.Run(ctx)
	for _, err := range result.Errors {
		if err != nil {
			a.logger.Warn().Err(err).Msg("employee not imported")
		}
	}

	failed := result.Failed()
	fmt.Fprintf(a.out, "imported %d of %d employees\n", len(requests)-failed, len(requests))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d employees: %w", ErrImportFailed, failed, len(requests), result.Err())
	}
	return nil
}

func importLabel(request models.EmployeeRequest) string {
	if request.EmployeeID == nil {
		return "no employee_id"
	}
	return *request.EmployeeID
}
