package main

import (
	"ProjectBlog/internal/config"
	"ProjectBlog/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewRootCmd serves the blog when run without a subcommand.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blog",
		Short:         "Multi-user blog server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewLogger()
	env := config.LoadEnv()

	server, err := config.NewServer(env,
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(),
		config.WithSessionStore(),
		config.WithImageStorage(),
		config.WithMetrics(),
		config.WithMiddleware(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		return err
	}

	if err := server.RegisterHandler(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	logger.Infof("Server listening on :%s", env.AppPort)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		logger.Info("Shutting down server...")
		return server.Shutdown(shutdownTimeout)
	}
}
