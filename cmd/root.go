package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpin "enquiry/internal/adapters/in/http"
	"enquiry/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the 'enquiry' command and its subcommands.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "enquiry",
		Short:         "Customer enquiries turned into sales quotations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file (yaml, json or toml)")
	root.PersistentFlags().StringP("log-level", "L", "", "Log level: debug, info, warn or error")
	_ = v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))

	load := func() (Config, *zap.Logger, error) {
		cfg, err := LoadConfig(v, ".env", configFile)
		if err != nil {
			return Config{}, nil, err
		}
		logger, err := NewLogger(cfg.LogLevel, cfg.LogDevelopment)
		if err != nil {
			return Config{}, nil, fmt.Errorf("build logger: %w", err)
		}
		return cfg, logger, nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the scheduled jobs",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := load()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				return serve(cmd.Context(), cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, logger, err := load()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()

				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				if err := postgres.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				logger.Info("Schema is up to date", zap.String("database", cfg.DBName))
				return nil
			},
		},
	)
	return root
}

func openDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database %s: %w", cfg.DBName, err)
	}
	return db, nil
}

// serve runs the HTTP server and the jobs until ctx is cancelled or a
// termination signal arrives.
func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	app, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	e := httpin.NewEcho(logger, cfg.LogLevel)
	if err := app.CreateHTTPServer().Register(e); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
