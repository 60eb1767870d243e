package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("ollamaterm %s (built %s)\n", Version, BuildTime)

		client, _, err := resolveClient()
		if err != nil {
			// No server configured is fine for a client-only version check.
			return nil
		}

		serverVersion, err := client.Version(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to reach server"))
			return nil
		}
		fmt.Printf("ollama server %s (%s)\n", serverVersion, client.BaseURL())
		return nil
	},
}
