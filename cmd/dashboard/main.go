package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"emmanuelos.dev/internal/config"
	"emmanuelos.dev/internal/handlers"
	"emmanuelos.dev/internal/manifest"
	"emmanuelos.dev/internal/services"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "EmmanuelOS app dashboard",
	Long: `Serves the EmmanuelOS dashboard: a filterable grid of the apps listed
in apps_manifest.json.

Configuration is read from the environment (SERVER_ADDR, DATA_PATH,
MANIFEST_FILE, MANIFEST_URL, FETCH_TIMEOUT, LOG_LEVEL, LOG_FORMAT).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		logger, err = cfg.NewLogger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var manifestPath string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Load the manifest once and print its categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		src := manifest.NewSource(cfg.ManifestURL, cfg.ManifestPath())
		if manifestPath != "" {
			src = manifest.NewFileSource(manifestPath)
		}
		return printCategories(cmd.Context(), cmd.OutOrStdout(), src)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	categoriesCmd.Flags().StringVar(&manifestPath, "manifest", "", "manifest file to read instead of the configured source")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe starts the server and the one-shot manifest load, and shuts
// both down on SIGINT/SIGTERM.
func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dashboard := services.NewDashboardService(logger, cfg.FetchTimeout)
	src := manifest.NewSource(cfg.ManifestURL, cfg.ManifestPath())

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, dashboard, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Listen before loading so a MANIFEST_URL pointing at this server works.
	ln, err := net.Listen("tcp", cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ServerAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// The load gets its own context so shutdown can close the dashboard
	// before the fetch sees cancellation.
	loadCtx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()

	g.Go(func() error {
		logger.Info("Server starting", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		dashboard.Load(loadCtx, src)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		dashboard.Close()
		cancelLoad()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
