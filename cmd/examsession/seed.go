package main

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and seed rooms, courses, and students",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if err := store.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	if err := store.Seed(cmd.Context()); err != nil {
		return err
	}

	logger.Info("schema ensured and seed data inserted")

	return nil
}
