package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ubatuba-events/events-client/internal/cli"
	"github.com/ubatuba-events/events-client/internal/core/service"
	"github.com/ubatuba-events/events-client/internal/infrastructure/config"
	"github.com/ubatuba-events/events-client/internal/infrastructure/rest"
	"github.com/ubatuba-events/events-client/internal/infrastructure/session"
	"github.com/ubatuba-events/events-client/pkg/logger"
)

func main() {
	envLoaded := godotenv.Load() == nil

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ubaevents: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if !envLoaded {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			log.Error().Err(err).Msg("cannot resolve session path")
			os.Exit(1)
		}
	}
	store := session.NewFileStore(sessionPath)

	client := rest.NewClient(cfg.BaseURL, cfg.HTTPTimeout, store, log)
	authService := service.NewAuthService(client, store, service.DefaultTokenTTL, log)
	eventService := service.NewEventService(client, log)

	app := cli.New(cli.Options{
		Auth:        authService,
		Events:      eventService,
		Session:     store,
		Pinger:      client,
		MetricsAddr: cfg.MetricsAddr,
		In:          os.Stdin,
		Out:         os.Stdout,
		Log:         log,
	})

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		}
		os.Exit(1)
	}
}
