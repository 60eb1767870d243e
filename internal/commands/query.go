package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/diogo/ollamaterm/internal/api"
	"github.com/diogo/ollamaterm/internal/config"
	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
	"github.com/diogo/ollamaterm/internal/render"
)

// Styles for decorated terminal output
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// runQuery sends one conversation and outputs the reply.
// If rawOutput is true, only the raw response text is printed without decoration.
func runQuery(prompt string, stream, rawOutput bool) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	client, cfg, err := resolveClient()
	if err != nil {
		if !rawOutput {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Configuration error"))
		}
		return err
	}

	// Verbose: show where the request goes
	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Server: %s\n", client.BaseURL())
		fmt.Fprintf(os.Stderr, "[verbose] Model: %s\n", client.GetModel())
	}

	// The conversation is built here and handed to the client as-is;
	// the client forwards it without touching past entries.
	var conversation []models.Message
	if systemFlag != "" {
		conversation = append(conversation, models.SystemMessage(systemFlag))
	}
	conversation = append(conversation, models.UserMessage(prompt))

	if stream {
		return runQueryStream(client, conversation, cfg.Verbose, rawOutput)
	}

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Generating response")
		spin.start()
	}

	startTime := time.Now()
	resp, err := client.Chat(context.Background(), conversation)
	requestDuration := time.Since(startTime)

	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Generation failed"))
		}
		return fmt.Errorf("generation failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Done")
	}

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
		if resp.EvalCount > 0 {
			fmt.Fprintf(os.Stderr, "[verbose] %d tokens generated\n", resp.EvalCount)
		}
	}

	return emitResponse(resp.Text(), cfg, rawOutput)
}

// runQueryStream prints reply fragments in arrival order. The spinner runs
// only until the first fragment shows up.
func runQueryStream(client api.ClientInterface, conversation []models.Message, verbose, rawOutput bool) error {
	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Waiting for first token")
		spin.start()
	}

	s, err := client.ChatStream(context.Background(), conversation)
	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Generation failed"))
		}
		return fmt.Errorf("generation failed: %w", err)
	}
	defer func() { _ = s.Close() }()

	var sb strings.Builder
	first := true
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if !rawOutput {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Stream failed"))
			}
			return fmt.Errorf("stream failed: %w", err)
		}
		if first && !rawOutput {
			spin.stopQuiet()
			first = false
		}
		fmt.Print(chunk.Message.Content)
		sb.WriteString(chunk.Message.Content)
	}
	if first && !rawOutput {
		spin.stopQuiet()
	}
	fmt.Println()

	text := sb.String()
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	if verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] %d characters received\n", len(text))
	}
	return nil
}

// emitResponse writes the reply to the requested destination: file,
// plain stdout, or decorated TTY output with rendered markdown.
func emitResponse(text string, cfg config.Config, rawOutput bool) error {
	// Raw output mode: output only the raw text
	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(text)
		return nil
	}

	fmt.Fprintln(os.Stderr)

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Response saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	// Get terminal width for proper formatting
	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	label := assistantLabelStyle.Render("✦ " + modelLabel())
	fmt.Println(label)

	rendered, err := render.Markdown(text, render.FromConfig(cfg.Markdown, contentWidth))
	if err != nil {
		rendered = text
	}
	rendered = strings.TrimRight(rendered, "\n")

	bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	return nil
}

// modelLabel returns the display name for the assistant header.
func modelLabel() string {
	if modelFlag != "" {
		return modelFlag
	}
	if m := os.Getenv("OLLAMA_MODEL"); m != "" {
		return m
	}
	return "Ollama"
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	// Extract additional context from structured errors
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}
	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	// Show response body if available (contains the server's error detail)
	if body := apierrors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	} else {
		switch {
		case apierrors.IsNetworkError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Is the Ollama server running? Check OLLAMA_BASE_URL"))
		case apierrors.IsTimeoutError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Request timed out. Large models can be slow to load"))
		case apierrors.IsStreamError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: The connection dropped mid-reply. Try again"))
		case apierrors.IsValidationError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Check the model name and prompt"))
		}
	}

	return sb.String()
}
