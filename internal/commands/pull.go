package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/ollamaterm/internal/models"
)

var pullCmd = &cobra.Command{
	Use:   "pull <name>",
	Short: "Download a model to the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func runPull(cmd *cobra.Command, args []string) error {
	name := args[0]

	client, _, err := resolveClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Configuration error"))
		return err
	}

	lastStatus := ""
	err = client.Pull(context.Background(), name, func(p models.PullProgress) error {
		if p.Total > 0 {
			pct := float64(p.Completed) / float64(p.Total) * 100
			fmt.Fprintf(os.Stderr, "\r\033[K%s %.1f%% (%s / %s)",
				p.Status, pct, formatSize(p.Completed), formatSize(p.Total))
		} else if p.Status != lastStatus {
			fmt.Fprintf(os.Stderr, "\r\033[K%s", p.Status)
		}
		lastStatus = p.Status
		return nil
	})
	fmt.Fprintln(os.Stderr)

	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Pull failed"))
		return fmt.Errorf("pull failed: %w", err)
	}

	doneMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
		fmt.Sprintf("✓ Pulled %s", name),
	)
	fmt.Fprintln(os.Stderr, doneMsg)
	return nil
}
