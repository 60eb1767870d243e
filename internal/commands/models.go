package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models installed on the server",
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	client, _, err := resolveClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Configuration error"))
		return err
	}

	installed, err := client.ListModels(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to list models"))
		return fmt.Errorf("failed to list models: %w", err)
	}

	if len(installed) == 0 {
		fmt.Println("No models installed. Run 'ollamaterm pull <name>' to download one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
	for _, m := range installed {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, formatSize(m.Size), m.ModifiedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// formatSize renders a byte count in human-readable form.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
