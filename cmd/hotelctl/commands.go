package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hotelreservation/internal/config"
	"hotelreservation/internal/domain"
	"hotelreservation/internal/logger"
	"hotelreservation/internal/seed"
	"hotelreservation/internal/storage"
)

func openStore(ctx context.Context) (*storage.Backend, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	zl, err := logger.New(cfg.LogLevel, "console", "hotelctl")
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, storage.Options{
		URL:           cfg.DatabaseURL,
		MongoDatabase: cfg.MongoDatabase,
		Timeout:       cfg.StoreTimeout,
	}, zl)
	if err != nil {
		return nil, nil, err
	}
	return store, zl, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables (SQL) or indexes (MongoDB)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, zl, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			if err := store.Migrate(ctx); err != nil {
				return err
			}
			zl.Info("migration complete", zap.String("kind", store.Kind))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the reference rooms and demo guest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, zl, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			if err := store.Migrate(ctx); err != nil {
				return err
			}
			seeded, err := seed.Run(ctx, store.Seeder, zl, force)
			if err != nil {
				return err
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "rooms already present; use --force to reseed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "reseed even when rooms exist")
	return cmd
}

func bookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "Print every booking as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			bookings, err := store.Bookings.FindAll(ctx)
			if err != nil {
				return err
			}
			return writeBookings(cmd.OutOrStdout(), bookings)
		},
	}
}

func writeBookings(w io.Writer, bookings []domain.Booking) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bookings)
}
