package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/hangserve/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the HangServe configuration",
		Long: `Manage the HangServe configuration file.

Values are read from the config file, then from HANGSERVE_* environment
variables, then from command line flags.`,
	}

	configCmd.AddCommand(newConfigRebuildCommand())
	configCmd.AddCommand(newConfigPathCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigRebuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Overwrite the config file with the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.RebuildConfigFile(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to rebuild config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config rebuilt at: %s\n", path)
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the config file in use",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetActiveConfigPath(cfgFile))
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadConfigWithPriority(cfgFile)
			if err != nil {
				return err
			}
			if err := applyFlags(cfg); err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), format, cfg)
		},
	}
	showCmd.Flags().StringVarP(&format, "output", "o", "toml", "output format (toml, json, yaml)")

	return showCmd
}

func writeConfig(w io.Writer, format string, cfg *config.Config) error {
	switch strings.ToLower(format) {
	case "", "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
