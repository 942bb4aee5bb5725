// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/crateops/crateops/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `crateops config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage crateops configuration",
	Long: `Manage crateops configuration.

Configuration is stored in:
  - Linux: ~/.config/crateops/config.toml
  - macOS: ~/Library/Application Support/crateops/config.toml
  - Windows: %APPDATA%\crateops\config.toml

Environment variables CRATEOPS_TEMPLATE_DIR and CRATEOPS_OWNER override the
config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("crateops configuration"))
	fmt.Println()
	fmt.Printf("  template_dir: %s\n", orUnset(cfg.TemplateDir))
	fmt.Printf("  owner:        %s\n", orUnset(cfg.Owner))
	fmt.Printf("  ui.verbose:   %t\n", cfg.UI.Verbose)
	return nil
}

// orUnset renders empty config values as a muted placeholder.
func orUnset(v string) string {
	if v == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return v
}
