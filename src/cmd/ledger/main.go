// Command ledger runs the XuBank console and its maintenance tasks.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/api-sage/xubank-ledger/src/internal/adapter/console"
	"github.com/api-sage/xubank-ledger/src/internal/adapter/repository/postgres"
	"github.com/api-sage/xubank-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/xubank-ledger/src/internal/config"
	"github.com/api-sage/xubank-ledger/src/internal/domain"
	"github.com/api-sage/xubank-ledger/src/internal/logger"
	"github.com/api-sage/xubank-ledger/src/internal/usecase/services"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:          "ledger",
		Short:        "XuBank multi-product account ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded

			level, _ := cmd.Flags().GetString("log-level")
			if level == "" {
				level = cfg.LogLevel
			}
			if err := logger.SetLevel(level); err != nil {
				return err
			}

			logFile, _ := cmd.Flags().GetString("log-file")
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				logger.SetOutput(f)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: LOG_LEVEL or info)")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file instead of stderr")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive console menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), cfg)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply report store migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = cfg.MigrationsDir
			}
			return runMigrations(cmd.Context(), cfg, dir)
		},
	}
	migrateCmd.Flags().String("dir", "", "migrations directory (default: MIGRATIONS_DIR or src/migrations)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(menuCmd, migrateCmd, versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runMenu(ctx context.Context, cfg config.Config) error {
	var reportRepo repo_interfaces.ReportRepository
	if cfg.ReportsEnabled() {
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("open report store: %w", err)
		}
		defer db.Close()

		repo, err := postgres.NewReportRepository(db, cfg.ReportRefKey)
		if err != nil {
			return err
		}
		reportRepo = repo
	}

	var opts []services.LedgerOption
	if cfg.HasYieldSeed {
		opts = append(opts, services.WithRateSampler(domain.NewUniformSampler(cfg.YieldSeed)))
	}

	svc := services.NewLedgerService(domain.NewBank(), reportRepo, opts...)
	logger.Info("ledger console started", logger.Fields{
		"reportsEnabled": reportRepo != nil,
		"seededYields":   cfg.HasYieldSeed,
	})

	return console.NewMenu(svc, os.Stdin, os.Stdout, cfg.CurrencySymbol).Run(ctx)
}

func runMigrations(ctx context.Context, cfg config.Config, dir string) error {
	if !cfg.ReportsEnabled() {
		return fmt.Errorf("DATABASE_DSN is required to run migrations")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	applied, err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, dir)
	if err != nil {
		logger.Error("run migrations failed", err, logger.Fields{"dir": dir})
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("migrations completed successfully", logger.Fields{
		"applied": applied,
	})
	return nil
}
