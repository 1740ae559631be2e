// ABOUTME: List command for displaying notes.
// ABOUTME: Supports search, category filter, sort modes, and pinned-only view.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/prefs"
	"github.com/harper/noted/internal/query"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List notes, optionally filtered by search text or category and sorted by date or title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchFlag, _ := cmd.Flags().GetString("search")
		categoryFlag, _ := cmd.Flags().GetString("category")
		sortFlag, _ := cmd.Flags().GetString("sort")
		pinnedFlag, _ := cmd.Flags().GetBool("pinned")

		sortMode, err := query.ParseSort(sortFlag)
		if err != nil {
			return err
		}

		// Title collation follows the language preference.
		p, err := prefs.Load(db)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		lang, parseErr := language.Parse(p.Language)
		if parseErr != nil {
			lang = language.Und
		}

		derived := query.Apply(notes.Notes(), query.Filter{
			Search:     searchFlag,
			Category:   categoryFlag,
			Sort:       sortMode,
			PinnedOnly: pinnedFlag,
			Lang:       lang,
		})

		if len(derived) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		for _, note := range derived {
			fmt.Print(ui.FormatNoteListItem(note, ui.ResolveCategory(note, categories)))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "case-insensitive substring search")
	listCmd.Flags().StringP("category", "c", "", "filter by category (All for everything)")
	listCmd.Flags().String("sort", "", "sort mode (newest|oldest|title|title-desc)")
	listCmd.Flags().Bool("pinned", false, "only pinned notes")
	rootCmd.AddCommand(listCmd)
}
