// Package commands provides CLI commands for ollamaterm.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	modelFlag   string
	baseURLFlag string
	outputFlag  string
	fileFlag    string
	systemFlag  string
	streamFlag  bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ollamaterm [prompt]",
	Short: "Terminal client for a local Ollama server",
	Long: `ollamaterm sends chat requests to a locally running Ollama server
and prints the reply. The server address and model come from the
OLLAMA_BASE_URL and OLLAMA_MODEL environment variables (a .env file
in the working directory is honored), or from flags.

Examples:
  ollamaterm "What is Go?"              Send a single query
  ollamaterm --stream "Tell a story"    Print the reply as it generates
  ollamaterm -f prompt.md               Read prompt from file
  cat prompt.md | ollamaterm            Read prompt from stdin
  ollamaterm "Hello" -o response.md     Save response to file
  ollamaterm models                     List installed models
  ollamaterm pull llama3.2              Download a model`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("ollamaterm %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), streamFlag, !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), streamFlag, !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], streamFlag, !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., llama3.2)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Ollama server address (e.g., http://localhost:11434)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().StringVarP(&systemFlag, "system", "s", "", "System prompt to prepend to the conversation")
	rootCmd.Flags().BoolVar(&streamFlag, "stream", false, "Print the reply incrementally as it generates")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
