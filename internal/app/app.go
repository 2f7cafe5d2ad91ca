package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/assetflow/backend/internal/config"
	"github.com/assetflow/backend/internal/handlers"
	"github.com/assetflow/backend/internal/httpserver"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/middleware"
)

// Run bootstraps the AssetFlow backend application.
func Run(ctx context.Context, args []string) error {
	root := newRootCommand(os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "assetflow",
		Short:         "AssetFlow asset discovery and license compliance backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("expected command: serve, search, attribution, or report")
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newServeCommand())
	root.AddCommand(newSearchCommand())
	root.AddCommand(newAttributionCommand())
	root.AddCommand(newReportCommand())

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// loadRuntime reads the configuration and installs the process logger.
func loadRuntime(ctx context.Context, logOut io.Writer) (context.Context, config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, config.Config{}, nil, err
	}

	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	return logging.WithLogger(ctx, logger), cfg, logger, nil
}

func serve(ctx context.Context, logOut io.Writer) error {
	ctx, cfg, logger, err := loadRuntime(ctx, logOut)
	if err != nil {
		return err
	}

	ws := buildWorkspace(ctx, cfg)

	deps, cleanup, err := buildDependencies(ctx, cfg, ws, logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps)

	handler := middleware.RequestLogger(logger)(mux)

	srv := httpserver.New(cfg.AppPort, handler, cfg.WriteTimeout)

	logger.Info("starting http server", "port", cfg.AppPort, "reference", ws.Dataset.Version)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	select {
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	case sig := <-signalCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-srvErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return cleanup(shutdownCtx)
}
