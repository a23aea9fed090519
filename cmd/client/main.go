package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-employee-service/internal/adapter"
	"github.com/MKhiriev/go-employee-service/internal/client"
	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewConsoleLogger("employee-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	employeeAdapter, err := adapter.NewHTTPEmployeeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(employeeAdapter, cfg.Adapter, os.Stdin, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, client.ErrNoCommand) {
			log.Error().Err(err).Msg("command failed")
		}
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
