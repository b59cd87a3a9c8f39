package main

import (
	"context"
	"fmt"
	"os"

	"storyteller/cmd/storyteller/pager"
	"storyteller/cmd/storyteller/ui"
	"storyteller/internal/config"
	"storyteller/internal/logging"
	"storyteller/internal/narrator"
	"storyteller/internal/story"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	useTUI     bool

	// Runtime state, replaced in PersistentPreRunE
	cfg    = config.DefaultConfig()
	logger = logging.Nop()
)

// rootCmd tells the story
var rootCmd = &cobra.Command{
	Use:   "storyteller",
	Short: "Tell a short story one line at a time",
	Long: `storyteller prints a fixed story line by line, waiting for you to
press Enter before each new line.

Run without arguments to hear the story. Closing standard input (Ctrl+D)
ends the telling early.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTell,
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Tell the story in a full-screen pager")

	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initRuntime loads config and builds the logger.
func initRuntime() error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if useTUI {
		loaded.Mode = config.ModeTUI
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	base, err := logging.New(loaded.Logging, verbose)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = base.With(zap.String("session", uuid.NewString()))
	logger.Get(logging.CategoryBoot).Debug("Runtime initialized",
		zap.String("config", configPath),
		zap.String("mode", string(cfg.Mode)),
		zap.String("theme", string(cfg.Theme)))
	return nil
}

// runTell tells the default story through the configured front end
func runTell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := story.Default()
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if cfg.IsTUI() {
		if isTerminal(in) && isTerminal(out) {
			m := pager.NewModel(s, ui.NewStyles(ui.ThemeFor(cfg.Theme)),
				pager.WithPrompt(cfg.Prompt),
				pager.WithLogger(logger.Get(logging.CategoryPager)))
			res, err := pager.Run(ctx, m, in, out)
			if err != nil {
				return err
			}
			logResult(res)
			return nil
		}
		logger.Get(logging.CategoryBoot).Warn("Pager needs an interactive terminal, falling back to plain output")
	}

	n := narrator.New(s, narrator.NewPlainTerminal(in, out),
		narrator.WithPrompt(cfg.Prompt),
		narrator.WithLogger(logger.Get(logging.CategoryNarrator)))
	res, err := n.Tell(ctx)
	if err != nil {
		return fmt.Errorf("telling failed: %w", err)
	}
	logResult(res)
	return nil
}

func logResult(res narrator.Result) {
	logger.Get(logging.CategoryBoot).Debug("Telling finished",
		zap.Int("told", res.Told),
		zap.Int("acknowledged", res.Acknowledged),
		zap.Bool("completed", res.Completed))
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
