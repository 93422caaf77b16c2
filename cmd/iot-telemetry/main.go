package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/events"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingest"
	"github.com/diwise/iot-telemetry/internal/pkg/application/subscriptions"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "iot-telemetry"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/diwise/config/authz.rego",
		configurationFile: "/opt/diwise/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := io.ReadAll(cfgFile)
	cfgFile.Close()
	exitIf(err, logger, "could not read configuration file")

	thresholds, err := alerts.NewConfig(io.NopCloser(bytes.NewReader(cfg)))
	exitIf(err, logger, "could not parse threshold configuration")

	notifications, err := events.LoadConfiguration(bytes.NewReader(cfg))
	exitIf(err, logger, "could not parse notification configuration")

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.CreateTables(ctx)
	exitIf(err, logger, "could not create tables")

	err = storage.SeedSensorTypes(ctx, s, defaultSensorTypes())
	exitIf(err, logger, "could not seed sensor types")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	registry := subscriptions.NewRegistry()
	broadcaster := subscriptions.NewBroadcaster(registry)
	notifier := events.New(notifications)

	alertSvc := alerts.New(s, messenger, thresholds, notifier, broadcaster)
	ingestSvc := ingest.New(s, messenger, alertSvc, broadcaster)
	deviceSvc := devices.New(s)

	messenger.Start()

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, deviceSvc, ingestSvc, alertSvc, registry)
	exitIf(err, logger, "failed to register handlers")

	webServer := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: r,
	}

	go func() {
		logger.Info("starting to listen for incoming connections", "port", flags[servicePort])

		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen for connections", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("web server shutdown failed", "err", err.Error())
	}

	messenger.Close()
	s.Close()
}

func defaultSensorTypes() []types.SensorType {
	return []types.SensorType{
		{ID: "temperature", Name: "Temperature", Unit: "°C", Description: "Ambient temperature"},
		{ID: "humidity", Name: "Humidity", Unit: "%", Description: "Relative humidity"},
		{ID: "light", Name: "Light", Unit: "lux", Description: "Ambient light level"},
	}
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "threshold and notification configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
