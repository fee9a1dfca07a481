package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamecharge/storefront/app/admin"
	"github.com/gamecharge/storefront/app/catalog"
	"github.com/gamecharge/storefront/app/config"
	"github.com/gamecharge/storefront/app/database"
	"github.com/gamecharge/storefront/app/logging"
	"github.com/gamecharge/storefront/app/orders"
	"github.com/gamecharge/storefront/app/seed"
	"github.com/gamecharge/storefront/app/server"
	"github.com/gamecharge/storefront/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	var envFiles []string

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Game top-up storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), envFiles, serve)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load the reference catalog into an empty database",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), envFiles, func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
					res, err := seed.NewLoader(db, slog.Default()).SeedIfEmpty(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), res)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), envFiles, func(context.Context, *config.Config, *gorm.DB) error {
					return nil
				})
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("storefront failed", "error", err)
		os.Exit(1)
	}
}

// withDB loads config, sets up logging, opens and migrates the database, then runs fn.
func withDB(ctx context.Context, envFiles []string, fn func(context.Context, *config.Config, *gorm.DB) error) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	log := logging.Setup(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 5,
		MaxAgeDays: 30,
	})

	db, err := database.Open(cfg.DatabaseDSN, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close database", "error", err)
		}
	}()

	if err := database.Ping(ctx, db); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return fn(ctx, cfg, db)
}

func serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	catalogRepo := models.NewCatalogRepository(db)
	ordersRepo := models.NewOrdersRepository(db)
	loader := seed.NewLoader(db, slog.Default())

	if cfg.SeedOnStart {
		res, err := loader.SeedIfEmpty(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		slog.Info(res.String())
	}

	mux := server.NewMux(server.Handlers{
		Catalog: catalog.NewCatalogHandler(catalog.NewQuery(catalogRepo)),
		Orders: orders.NewOrderHandler(
			orders.NewService(catalogRepo, ordersRepo, slog.Default()),
			orders.HandoffConfig{Phone: cfg.HandoffPhone, Locale: cfg.HandoffLocale},
		),
		Admin: admin.NewAdminHandler(catalogRepo, loader),
	})
	return server.Run(ctx, cfg.HTTPAddr, mux)
}
