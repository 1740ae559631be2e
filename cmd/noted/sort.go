// ABOUTME: Sort command reversing the stored note order.
// ABOUTME: Mirrors the single-button order toggle; not a keyed sort.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Reverse the stored note order",
	Long:  `Reverse the canonical stored order of the whole collection. For keyed ordering use list --sort.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Reverse(); err != nil {
			return fmt.Errorf("failed to reverse notes: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Reversed order of %d note(s)", notes.Len())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
