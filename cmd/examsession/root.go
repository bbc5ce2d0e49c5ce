package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/pssc-labs/exam-session-go/notify"
	"github.com/pssc-labs/exam-session-go/postgres"
)

var version = "dev"

var (
	cfg         Config
	logger      *slog.Logger
	pool        *pgxpool.Pool
	replicaPool *pgxpool.Pool
	store       *postgres.Store
	notifier    *notify.Client
)

var rootCmd = &cobra.Command{
	Use:   "examsession",
	Short: "Coordinate university exam sessions",
	Long: `Coordinate university exam sessions: schedule exams into rooms,
register students, publish grades, and file grade contestations.

Configuration is taken from environment variables:
  EXAMSESSION_DATABASE_URL          Postgres connection string
  EXAMSESSION_DATABASE_REPLICA_URL  read replica connection string (optional)
  EXAMSESSION_NOTIFY_URL            base URL of the notification service (optional)
  EXAMSESSION_LOG_LEVEL             debug, info, warn, or error (default info)`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error

	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger = newLogger(cfg.LogLevel)

	pool, err = pgxpool.New(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	if cfg.DatabaseReplicaURL != "" {
		replicaPool, err = pgxpool.New(cmd.Context(), cfg.DatabaseReplicaURL)
		if err != nil {
			return fmt.Errorf("connect to postgres replica: %w", err)
		}

		store, err = postgres.NewStoreFromPGXPoolAndReplica(pool, replicaPool,
			postgres.WithLogger(slogAdapter{logger}))
	} else {
		store, err = postgres.NewStoreFromPGXPool(pool, postgres.WithLogger(slogAdapter{logger}))
	}
	if err != nil {
		return err
	}

	if cfg.NotifyURL != "" {
		notifier, err = notify.NewClient(cfg.NotifyURL, notify.WithLogger(slogAdapter{logger}))
		if err != nil {
			return err
		}
	}

	return nil
}

// finish journals the terminal event, prints it, and maps failure events to
// a non-zero exit.
func finish(cmd *cobra.Command, event postgres.WorkflowEvent) error {
	if err := store.AppendEvent(cmd.Context(), event); err != nil {
		logger.Warn("failed to journal event", "error", err.Error())
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(event, "", "  ")
	if err != nil {
		return fmt.Errorf("render event: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if event.IsFailure() {
		return errors.New(event.EventType())
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	defer func() {
		if replicaPool != nil {
			replicaPool.Close()
		}
		if pool != nil {
			pool.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
