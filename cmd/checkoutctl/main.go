package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MikeRez0/checkout/internal/adapter/config"
	"github.com/MikeRez0/checkout/internal/adapter/logger"
	"github.com/MikeRez0/checkout/internal/adapter/storage"
	"github.com/MikeRez0/checkout/internal/adapter/storage/repository"
	"github.com/MikeRez0/checkout/internal/core/service"
	"github.com/MikeRez0/checkout/internal/core/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dsn      string
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "checkoutctl",
		Short:        "Administration tool for the checkout service",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dsn, "dsn", "d", "", "database string (default $DATABASE_URI)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (default $LOG_LEVEL or error)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(articleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	conf, err := config.NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if dsn != "" {
		conf.Database.DSN = dsn
	}
	if logLevel != "" {
		conf.App.LogLevel = logLevel
	}
	if conf.Database.DSN == "" {
		return nil, fmt.Errorf("database string is required: use --dsn or DATABASE_URI")
	}
	return conf, nil
}

func openDB(ctx context.Context) (*storage.DB, *zap.Logger, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		return nil, nil, fmt.Errorf("bad log level %q", conf.App.LogLevel)
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}

// articleService wires the article store the same way the server does.
func articleService(db *storage.DB, log *zap.Logger) (*service.ArticleService, error) {
	repo, err := repository.NewRepository(db)
	if err != nil {
		return nil, err
	}
	validator, err := validation.New()
	if err != nil {
		return nil, err
	}
	return service.NewArticleService(repo, validator, log.Named("Article service"))
}
