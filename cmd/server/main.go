package main

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/crypto"
	handler "github.com/MKhiriev/go-employee-service/internal/handler/http"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/server"
	"github.com/MKhiriev/go-employee-service/internal/service"
	"github.com/MKhiriev/go-employee-service/internal/store"
	"github.com/MKhiriev/go-employee-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("employee-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	hasher := crypto.NewBcryptHasher(bcrypt.DefaultCost)

	storages, err := store.NewStorages(context.Background(), *cfg, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, hasher, *cfg, log)

	srv, err := server.NewServer(handler.NewHandler(services, cfg.Server, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
