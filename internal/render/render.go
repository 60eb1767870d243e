package render

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown renders markdown content for terminal display.
// glamour.TermRenderer is not safe for concurrent Render calls, so a
// fresh renderer is built per call; rendering happens once per response,
// not per fragment, so this is not a hot path.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := createRenderer(opts)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// MarkdownWithWidth is a convenience function for rendering with specific width.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// createRenderer builds a glamour renderer from the options.
func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	renderOpts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	}

	switch opts.Style {
	case "", "dark":
		renderOpts = append(renderOpts, glamour.WithStyles(styles.DarkStyleConfig))
	case "light":
		renderOpts = append(renderOpts, glamour.WithStyles(styles.LightStyleConfig))
	case "auto":
		renderOpts = append(renderOpts, glamour.WithAutoStyle())
	default:
		// Treat anything else as a path to a JSON style file.
		renderOpts = append(renderOpts, glamour.WithStylePath(opts.Style))
	}

	if opts.PreserveNewLines {
		renderOpts = append(renderOpts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(renderOpts...)
}
