package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/sizzlecar/simple-redis/internal/command"
	"github.com/sizzlecar/simple-redis/internal/config"
	"github.com/sizzlecar/simple-redis/internal/logging"
	"github.com/sizzlecar/simple-redis/internal/server"
	"github.com/sizzlecar/simple-redis/internal/store"
)

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set GOMAXPROCS: %v\n", err)
	}

	cmd := config.RootCmd(run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log := logging.New(cfg.LogLevel)

	st := store.New(cfg.NumShards)
	handler := command.NewHandler(st)
	srv := server.New(cfg.ListenAddr, handler, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Infof("signal received, shutting down")
		cancel()
	}()

	return srv.ListenAndServe(ctx)
}
