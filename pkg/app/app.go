package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"farmstand/pkg/cart"
	"farmstand/pkg/catalog"
	"farmstand/pkg/contact"
	"farmstand/pkg/httpapi"
	"farmstand/pkg/notify"
	"farmstand/pkg/version"
)

// Run executes the farmstand CLI so the root binary and cmd/server share one entry point.
func Run(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// cli carries state shared between the cobra hooks and subcommands.
type cli struct {
	debug  bool
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "farmstand",
		Short:         "Food catalog and recipe storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(c.debug)
			if err != nil {
				return fmt.Errorf("unable to build logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug logging")

	root.AddCommand(c.serveCmd(), c.listCmd(), versionCmd())
	return root
}

// newLogger follows the production zap config, lowering the level for --debug.
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func (c *cli) serveCmd() *cobra.Command {
	var (
		configPath  string
		port        int
		catalogPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = catalogPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return Serve(cmd.Context(), cfg, c.logger)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a yaml config file")
	cmd.Flags().IntVar(&port, "port", 8765, "Port for the HTTP server")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog markup file; the built-in sample is used when empty")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the application version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "farmstand version %s\n", version.Version())
			return err
		},
	}
}

// Serve composes the catalog, the cart goroutine, the emitter, and the HTTP server,
// and blocks until ctx is canceled or the server fails.
func Serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	library := catalog.NewLibrary(logger.Named("catalog"))
	if err := library.Load(cfg.CatalogPath); err != nil {
		return fmt.Errorf("unable to load catalog: %w", err)
	}

	cartService := cart.NewService(logger.Named("cart"))
	defer cartService.Close()

	notices := notify.NewEmitter(
		notify.WithDurations(cfg.Notifications.Display, cfg.Notifications.Transition),
		notify.WithLogger(logger.Named("notify")),
	)
	defer notices.Close()

	srv, err := httpapi.New(library, cartService, notices, contact.NewForm(logger.Named("contact")), logger.Named("http"))
	if err != nil {
		return fmt.Errorf("unable to build http server: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.address(),
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("farmstand is running", zap.String("addr", server.Addr), zap.String("version", version.Version()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if cfg.WatchCatalog && cfg.CatalogPath != "" {
		g.Go(func() error {
			return library.Watch(gctx, cfg.CatalogPath)
		})
	}
	return g.Wait()
}
