// ABOUTME: Clear command for wiping the whole note collection.
// ABOUTME: Prompts for confirmation unless --force is given.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		count := notes.Len()
		if count == 0 {
			fmt.Println("No notes to delete.")
			return nil
		}

		if !force {
			fmt.Printf("Delete all %d notes? [y/N]: ", count)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := notes.Clear(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Deleted %d notes", count)))
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(clearCmd)
}
