// ABOUTME: Import command for restoring notes from a JSON backup.
// ABOUTME: Merges into the current collection, skipping id collisions.

package main

import (
	"fmt"
	"os"

	"github.com/harper/noted/internal/portability"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import notes from a JSON export",
	Long: `Import notes from a JSON export file.

Accepts both an export envelope and a bare array of notes. Notes whose
id already exists in the collection are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		incoming, err := portability.Decode(data)
		if err != nil {
			return err
		}

		added, skipped, err := portability.Merge(notes, incoming)
		if err != nil {
			return err
		}

		msg := fmt.Sprintf("Imported %d notes", added)
		if skipped > 0 {
			msg += fmt.Sprintf(" (%d skipped)", skipped)
		}
		fmt.Println(ui.Success(msg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
