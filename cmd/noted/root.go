// ABOUTME: Root command wiring for the noted CLI.
// ABOUTME: Opens the store and hydrates the repository and registry per run.

package main

import (
	"fmt"
	"os"

	"github.com/harper/noted/internal/repo"
	"github.com/harper/noted/internal/store"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var (
	db         *store.Store
	notes      *repo.Repository
	categories *repo.Registry
)

var rootCmd = &cobra.Command{
	Use:           "noted",
	Short:         "Local-first note keeper",
	Long:          `noted keeps short notes with categories, colors, and pins in a local key-value store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("data")
		if path == "" {
			path = store.DefaultPath()
		}

		var err error
		db, err = store.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		notes = repo.NewRepository(db)
		if err := notes.Load(); err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}
		categories = repo.NewRegistry(db, notes)
		if err := categories.Load(); err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "store directory (default: XDG data home)")
}
