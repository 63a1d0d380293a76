package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/mockapi"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.Production, os.Stderr)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := mockapi.NewRouter(mockapi.NewStore(mockapi.SampleUsers()...), logger)
	if err := mockapi.Serve(ctx, cfg.MockAPIAddr, router, logger); err != nil {
		logger.Error(ctx, "mock api stopped", "error", err)
		os.Exit(1)
	}

}
