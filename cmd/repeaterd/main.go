package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meshforge/repeaterd/internal/config"
	"github.com/meshforge/repeaterd/internal/handlers"
	"github.com/meshforge/repeaterd/internal/log"
	"github.com/meshforge/repeaterd/internal/logcapture"
	"github.com/meshforge/repeaterd/internal/server"
	"github.com/meshforge/repeaterd/internal/services"
	"github.com/meshforge/repeaterd/pkg/scheduler"
)

// version is injected at build time via -ldflags.
var version = "v0.0.0-dev"

const (
	numWorkers      = 3
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "repeaterd",
		Short:        "Mesh repeater daemon with an embedded web front end",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	cmd.Version = version
	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	capture := logcapture.New(logcapture.DefaultCapacity)
	flush, err := log.Setup(cfg.LogLevel, cfg.LogFormat, capture)
	if err != nil {
		return err
	}
	defer flush()

	if cfg.PublicKey == "" {
		cfg.PublicKey = uuid.NewString()
		zap.S().Infow("no public key configured, generated ephemeral identity",
			"public_key", cfg.PublicKey)
	}

	sched := scheduler.NewScheduler(numWorkers)
	defer sched.Close()

	daemon := newLocalDaemon()
	advertSrv := services.NewAdvertService(sched, daemon.SendAdvert)
	daemonCtl := services.NewDaemonControl(sched, daemon)

	handler := handlers.New(daemon.Stats, advertSrv, daemonCtl, cfg, configPath, capture, version)

	srv := server.New(cfg, handler.RegisterRoutes)
	if err := srv.Start(); err != nil {
		zap.S().Errorw("failed to start web server", "error", err)
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	received := <-sig
	zap.S().Infow("shutting down", "signal", received.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.Stop(ctx)
	return nil
}
