package main

import (
	"fmt"
	"io"

	"storyteller/internal/config"
	"storyteller/internal/logging"
	"storyteller/internal/story"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var transcriptRaw bool

// transcriptCmd prints the whole story without pausing
var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Print the whole story at once",
	Long: `Prints every line of the story without waiting between lines.

On a terminal the story is rendered as styled markdown; use --raw for one
plain line per story line.`,
	Args: cobra.NoArgs,
	RunE: runTranscript,
}

func init() {
	transcriptCmd.Flags().BoolVar(&transcriptRaw, "raw", false, "Print plain lines without styling")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	s := story.Default()
	out := cmd.OutOrStdout()
	log := logger.Get(logging.CategoryTranscript)

	if transcriptRaw || !isTerminal(out) {
		log.Debug("Writing raw transcript", zap.Int("lines", s.Len()))
		return writeRawTranscript(out, s)
	}

	rendered, err := renderMarkdown(s, cfg.Theme)
	if err != nil {
		log.Warn("Markdown rendering failed, writing raw transcript", zap.Error(err))
		return writeRawTranscript(out, s)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func writeRawTranscript(w io.Writer, s *story.Story) error {
	for _, line := range s.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}
	return nil
}

// renderMarkdown renders the story through glamour.
func renderMarkdown(s *story.Story, theme config.Theme) (string, error) {
	style := glamour.WithAutoStyle()
	switch theme {
	case config.ThemeDark:
		style = glamour.WithStandardStyle("dark")
	case config.ThemeLight:
		style = glamour.WithStandardStyle("light")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return renderer.Render(s.Markdown())
}
