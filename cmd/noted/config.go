// ABOUTME: Config command for viewing and changing preferences.
// ABOUTME: Flags mirror the settings surface: font, dark mode, language, layout, theme.

package main

import (
	"fmt"

	"github.com/harper/noted/internal/prefs"
	"github.com/harper/noted/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change preferences",
	Long: `Show current preferences, or change them with flags.

Without flags the current settings are printed. Each flag updates the
corresponding setting and persists it immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prefs.Load(db)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("font") && !cmd.Flags().Changed("dark") &&
			!cmd.Flags().Changed("language") && !cmd.Flags().Changed("layout") &&
			!cmd.Flags().Changed("theme") {
			fmt.Printf("font:     %s\n", p.Font)
			fmt.Printf("dark:     %t\n", p.DarkMode)
			fmt.Printf("language: %s\n", p.Language)
			fmt.Printf("layout:   %s\n", p.Layout)
			fmt.Printf("theme:    %s\n", p.Theme)
			return nil
		}

		if cmd.Flags().Changed("font") {
			p.Font, _ = cmd.Flags().GetString("font")
		}
		if cmd.Flags().Changed("dark") {
			p.DarkMode, _ = cmd.Flags().GetBool("dark")
		}
		if cmd.Flags().Changed("language") {
			p.Language, _ = cmd.Flags().GetString("language")
		}
		if cmd.Flags().Changed("layout") {
			layout, _ := cmd.Flags().GetString("layout")
			if layout != "list" && layout != "grid" {
				return fmt.Errorf("unknown layout: %s (use list or grid)", layout)
			}
			p.Layout = layout
		}
		if cmd.Flags().Changed("theme") {
			theme, _ := cmd.Flags().GetString("theme")
			if theme != "light" && theme != "dark" && theme != "system" {
				return fmt.Errorf("unknown theme: %s (use light, dark or system)", theme)
			}
			p.Theme = theme
		}

		if err := p.Save(db); err != nil {
			return err
		}
		fmt.Println(ui.Success("Preferences updated"))
		return nil
	},
}

func init() {
	configCmd.Flags().String("font", "", "font family")
	configCmd.Flags().Bool("dark", true, "dark mode")
	configCmd.Flags().String("language", "", "interface language")
	configCmd.Flags().String("layout", "", "note list layout (list|grid)")
	configCmd.Flags().String("theme", "", "color theme (light|dark|system)")
	rootCmd.AddCommand(configCmd)
}
