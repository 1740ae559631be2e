// ABOUTME: Export command for backing up notes.
// ABOUTME: Supports JSON envelope and markdown directory formats.

package main

import (
	"fmt"
	"os"

	"github.com/harper/noted/internal/portability"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export all notes to a JSON file or a directory of markdown files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		switch format {
		case "json":
			data, err := portability.EncodeJSON(notes.Notes())
			if err != nil {
				return err
			}
			if outputPath == "" || outputPath == "-" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", notes.Len(), outputPath)))
			return nil
		case "md":
			if outputPath == "" {
				outputPath = "export"
			}
			if err := portability.ExportMarkdown(notes.Notes(), outputPath); err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", notes.Len(), outputPath)))
			return nil
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
