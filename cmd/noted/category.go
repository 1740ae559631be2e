// ABOUTME: Category commands for managing the label registry.
// ABOUTME: Deleting a label reassigns its notes to the default category.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make(map[string]int)
		for _, n := range notes.Notes() {
			counts[n.Category]++
		}
		fmt.Print(ui.FormatCategoryList(categories.List(), counts))
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := categories.Add(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Added category %q", args[0])))
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <label>",
	Short: "Remove a category",
	Long:  `Delete a custom category. Its notes move to the default category; defaults are permanent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := categories.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed category %q, its notes moved to %q", args[0], models.DefaultCategory)))
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}
