package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"agrorent-backend/internal/app"
	"agrorent-backend/internal/config"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository/postgres"
	"agrorent-backend/internal/security"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	run := func(op func(*postgres.Store) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := postgres.Open(cmd.Context(), cfg.GetDatabaseConnectionString(), 1, 1, time.Minute)
			if err != nil {
				return err
			}
			defer db.Close()
			return op(postgres.NewStore(db))
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  run(func(s *postgres.Store) error { return postgres.Migrate(s.DB().DB) }),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE:  run(func(s *postgres.Store) error { return postgres.MigrateDown(s.DB().DB) }),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show status of all migrations",
			RunE:  run(func(s *postgres.Store) error { return postgres.MigrationStatus(s.DB().DB) }),
		},
	)
	return cmd
}

func rebuildRatingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild-ratings",
		Short: "Recompute rating aggregates from all reviews",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			a, err := app.Build(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.Reputation.RebuildAggregates(ctx)
			if err != nil {
				return fmt.Errorf("rebuild failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reviews scanned: %d\nsubject aggregates: %d\nmachine aggregates: %d\n",
				summary.ReviewsScanned, summary.SubjectsWritten, summary.MachinesWritten)
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 10*time.Minute, "Abort the rebuild after this long")
	return cmd
}

// issueTokenCmd mints an access token the way the identity provider would.
// It is meant for local development and smoke tests.
func issueTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue-token <user-id>",
		Short: "Issue a development access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			email, _ := cmd.Flags().GetString("email")
			roles, _ := cmd.Flags().GetStringSlice("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			tm := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, ttl)
			token, err := tm.GenerateAccessToken(userID, email, roles)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().StringSlice("role", nil, "Role claim (repeatable)")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	return cmd
}
