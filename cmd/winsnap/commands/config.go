package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/output"
	"github.com/bryanchriswhite/winsnap/internal/presenter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage winsnap configuration",
	Long:  `View and manage winsnap configuration settings.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current winsnap configuration, including environment and flag overrides.`,
	Example: `  # Show configuration as YAML (default)
  winsnap config show

  # Show configuration as JSON
  winsnap config show --as json`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long:  `Set a specific configuration value and save it to the config file.`,
	Example: `  # Read pixels through the Composite extension
  winsnap config set capture.use_composite true

  # Set log level
  winsnap config set log_level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get output format
  winsnap config get output_format

  # Get JPEG quality
  winsnap config get capture.jpeg_quality`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

var showAs string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().StringVar(&showAs, "as", "yaml", "encoding (yaml or json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := configMgr.Get()

	switch showAs {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported encoding: %s (use 'yaml' or 'json')", showAs)
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	var typed any
	switch key {
	case "server_port", "capture.jpeg_quality":
		var num int
		if _, err := fmt.Sscanf(value, "%d", &num); err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		if key == "capture.jpeg_quality" && (num < 1 || num > 100) {
			return fmt.Errorf("invalid JPEG quality: %d (use 1-100)", num)
		}
		typed = num
	case "log_pretty", "capture.use_composite":
		var enabled bool
		if _, err := fmt.Sscanf(value, "%t", &enabled); err != nil {
			return fmt.Errorf("invalid boolean: %s (use: true or false)", value)
		}
		typed = enabled
	case "log_level":
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[value] {
			return fmt.Errorf("invalid log level: %s (use: debug, info, warn, error)", value)
		}
		typed = value
	case "output_format":
		if _, err := presenter.ForFormat(value, io.Discard); err != nil {
			return err
		}
		typed = value
	case "display":
		typed = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := configMgr.Set(key, typed); err != nil {
		return err
	}
	if err := configMgr.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	logger.WithComponent("config").Info().
		Str("key", key).
		Str("value", value).
		Msg("Configuration updated")
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s = %s\n", key, value)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := configMgr.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key not found: %s", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), configMgr.GetConfigPath())
	return nil
}

// encodingOptions maps configuration to encoder options
func encodingOptions() output.Options {
	return output.Options{JPEGQuality: configMgr.Get().Capture.JPEGQuality}
}
