package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/ollamaterm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the current configuration or set a value.

Settings:
  default_model      Model used when OLLAMA_MODEL is unset
  default_base_url   Server used when OLLAMA_BASE_URL is unset
  timeout_seconds    Request timeout for non-streaming calls
  verbose            Detailed progress output (true/false)
  copy_to_clipboard  Copy replies to the clipboard (true/false)
  markdown_style     Markdown theme: dark, light, auto, or a JSON file`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "default_model\t%s\n", cfg.DefaultModel)
	fmt.Fprintf(w, "default_base_url\t%s\n", cfg.DefaultBaseURL)
	fmt.Fprintf(w, "timeout_seconds\t%d\n", cfg.TimeoutSeconds)
	fmt.Fprintf(w, "verbose\t%t\n", cfg.Verbose)
	fmt.Fprintf(w, "copy_to_clipboard\t%t\n", cfg.CopyToClipboard)
	fmt.Fprintf(w, "markdown_style\t%s\n", cfg.Markdown.Style)
	return w.Flush()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "default_model":
		cfg.DefaultModel = value
	case "default_base_url":
		cfg.DefaultBaseURL = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("timeout_seconds must be a non-negative integer")
		}
		cfg.TimeoutSeconds = n
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
	case "markdown_style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}
