// ABOUTME: Pin command toggling a note's pinned flag.
// ABOUTME: Pinning marks a note for priority display; it never reorders lists.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id-prefix>",
	Short: "Pin or unpin a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		updated, err := notes.TogglePinned(note.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle pin: %w", err)
		}

		if updated.Pinned {
			fmt.Println(ui.Success(fmt.Sprintf("Pinned note %s", updated.ID.String()[:6])))
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Unpinned note %s", updated.ID.String()[:6])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
