// ABOUTME: Add command for creating new notes.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new note",
	Long:  `Create a new note with the given title. Content can be provided via --content, --file, or $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		imageFlag, _ := cmd.Flags().GetString("image")
		colorFlag, _ := cmd.Flags().GetString("color")
		categoryFlag, _ := cmd.Flags().GetString("category")

		var content string
		var err error

		switch {
		case contentFlag != "":
			content = contentFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		default:
			content, err = openEditor("")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		color := models.Color(colorFlag)
		if colorFlag != "" && !color.Valid() {
			return fmt.Errorf("unknown color %q (neutral|red|blue|green|yellow)", colorFlag)
		}
		if categoryFlag != "" && !categories.Contains(categoryFlag) {
			return fmt.Errorf("unknown category %q, add it first with: noted category add", categoryFlag)
		}

		note, err := notes.Create(title, content, imageFlag, color, categoryFlag)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created note %s", note.ID.String()[:6])))
		return nil
	},
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "noted-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	addCmd.Flags().String("content", "", "note content (inline)")
	addCmd.Flags().String("file", "", "read content from file")
	addCmd.Flags().String("image", "", "attach an image by URI or path")
	addCmd.Flags().String("color", "", "color tag (neutral|red|blue|green|yellow)")
	addCmd.Flags().StringP("category", "c", "", "category label")
	rootCmd.AddCommand(addCmd)
}
