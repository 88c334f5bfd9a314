package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/driftroom-server/internal/app"
	"github.com/vovakirdan/driftroom-server/internal/config"
	"github.com/vovakirdan/driftroom-server/internal/log"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	bootstrap := log.New("info", config.EnvDevelopment)

	cfg, resolvedPath, err := config.Load(bootstrap, configPath)
	if err != nil {
		bootstrap.Fatal().Err(err).Str("path", resolvedPath).Msg("failed to load config")
	}

	logger := log.New(cfg.LogLevel, cfg.Env)
	logger.Info().Str("config", resolvedPath).Str("env", cfg.Env).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("starting driftroom server")
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
