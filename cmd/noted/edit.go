// ABOUTME: Edit command for updating existing notes.
// ABOUTME: Patches individual fields; content opens in $EDITOR when no flag given.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix>",
	Short: "Edit a note",
	Long:  `Update a note's fields. Without field flags the content opens in $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		var patch models.Patch

		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("content") {
			v, _ := cmd.Flags().GetString("content")
			patch.Content = &v
		}
		if cmd.Flags().Changed("image") {
			v, _ := cmd.Flags().GetString("image")
			patch.Image = &v
		}
		if cmd.Flags().Changed("color") {
			v, _ := cmd.Flags().GetString("color")
			color := models.Color(v)
			if !color.Valid() {
				return fmt.Errorf("unknown color %q (neutral|red|blue|green|yellow)", v)
			}
			patch.Color = &color
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			if !categories.Contains(v) {
				return fmt.Errorf("unknown category %q, add it first with: noted category add", v)
			}
			patch.Category = &v
		}

		// No field flags: edit the content interactively.
		if patch == (models.Patch{}) {
			content, err := openEditor(note.Content)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			patch.Content = &content
		}

		updated, err := notes.Update(note.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated note %s", updated.ID.String()[:6])))
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("content", "", "new content")
	editCmd.Flags().String("image", "", "new image URI (empty string removes it)")
	editCmd.Flags().String("color", "", "new color tag")
	editCmd.Flags().StringP("category", "c", "", "new category label")
	rootCmd.AddCommand(editCmd)
}
