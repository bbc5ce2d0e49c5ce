package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database and notification service connectivity",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if err := pool.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("postgres unreachable: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "postgres: ok")

	if notifier == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "notification service: not configured")
		return nil
	}

	if !notifier.HealthCheck(cmd.Context()) {
		return errors.New("notification service unreachable")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "notification service: ok")

	return nil
}
