// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-employee-service/internal/adapter"
	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/logger"
)

const tokenFileMode = 0o600

type App struct {
	adapter adapter.EmployeeAdapter

	tokenFile         string
	importConcurrency int

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// command is one sub-command of the client. Commands with authorized set
// load the stored bearer token before they run.
type command struct {
	usage      string
	authorized bool
	run        func(ctx context.Context, args []string) error
}

// NewApp constructs the client application. Command results are written to
// out as JSON or plain text; in is read by commands given "-f -".
func NewApp(adapter adapter.EmployeeAdapter, cfg config.Adapter, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:           adapter,
		tokenFile:         cfg.TokenFile,
		importConcurrency: cfg.ImportConcurrency,
		in:                in,
		out:               out,
		logger:            logger,
	}
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":  {usage: "login -u USERNAME -p PASSWORD", run: a.login},
		"logout": {usage: "logout", run: a.logout},
		"get":    {usage: "get EMPLOYEE_ID", run: a.get},
		"create": {usage: "create -f FILE|-", authorized: true, run: a.create},
		"update": {usage: "update -f FILE|- EMPLOYEE_ID", authorized: true, run: a.update},
		"delete": {usage: "delete EMPLOYEE_ID", authorized: true, run: a.delete},
		"list":   {usage: "list -department NAME [-skip N] [-limit N]", run: a.list},
		"search": {usage: "search -skill SKILL", run: a.search},
		"avg":    {usage: "avg", run: a.averageSalary},
		"health": {usage: "health", run: a.health},
		"import": {usage: "import -f FILE|-", authorized: true, run: a.importEmployees},
	}
}

// Run dispatches args[0] to its sub-command.
func (a *App) Run(ctx context.Context, args []string) error {
	cmds := a.commands()

	if len(args) == 0 {
		a.printUsage(cmds)
		return ErrNoCommand
	}

	cmd, ok := cmds[args[0]]
	if !ok {
		a.printUsage(cmds)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if cmd.authorized {
		if err := a.loadToken(); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func (a *App) printUsage(cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(a.out, "usage: employee-client COMMAND [ARGS]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", cmds[name].usage)
	}
}

func (a *App) loadToken() error {
	raw, err := os.ReadFile(a.tokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotLoggedIn
	}
	if err != nil {
		return fmt.Errorf("error reading token file: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return ErrNotLoggedIn
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *App) saveToken(token string) error {
	if err := os.WriteFile(a.tokenFile, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	return nil
}

// readInput returns the content of path, or of the app's input when path
// is "-".
func (a *App) readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -f", ErrMissingArgument)
	}
	if path == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(path)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
