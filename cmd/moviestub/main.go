package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sebastiantruijens/moviedeck/internal/config"
	"github.com/sebastiantruijens/moviedeck/internal/logger"
	"github.com/sebastiantruijens/moviedeck/internal/stubserver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "moviestub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging, os.Stdout)

	movies, err := stubserver.LoadFixture(cfg.Stub.FixturePath)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	server := stubserver.New(movies, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Stub.Addr); err != nil {
		return err
	}
	log.Info("stub server exited")
	return nil
}
