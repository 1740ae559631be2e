// ABOUTME: Remove command for deleting one or more notes.
// ABOUTME: Multiple prefixes go through the selection tracker as one batch.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harper/noted/internal/repo"
	"github.com/harper/noted/internal/selection"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>...",
	Short: "Remove notes",
	Long:  `Delete one or more notes. Multiple ids are deleted as a single batch.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		tracker, titles, err := buildSelection(notes, args)
		if err != nil {
			return err
		}

		if !force {
			fmt.Printf("Delete %d note(s) (%s)? [y/N] ", tracker.Count(), strings.Join(titles, ", "))
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				tracker.Cancel()
				fmt.Println("Cancelled.")
				return nil
			}
		}

		count := tracker.Count()
		if err := tracker.Confirm(notes); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted %d note(s)", count)))
		return nil
	},
}

// buildSelection resolves each prefix and selects it. Repeated
// prefixes collapse into one selection so a doubled argument cannot
// deselect the note it just selected.
func buildSelection(r *repo.Repository, prefixes []string) (*selection.Tracker, []string, error) {
	tracker := selection.New()
	var titles []string
	for _, prefix := range prefixes {
		note, err := r.FindByPrefix(prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get note %q: %w", prefix, err)
		}
		if tracker.IsSelected(note.ID) {
			continue
		}
		tracker.LongPress(note.ID)
		titles = append(titles, note.Title)
	}
	return tracker, titles, nil
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
