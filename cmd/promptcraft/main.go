package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/logging"
	"github.com/sant0-9/promptcraft/internal/tui"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// cli holds state shared by every command
type cli struct {
	configPath string
	verbose    bool

	cfg        *config.Config
	configSeen bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "promptcraft",
		Short: "Turn a few keywords into a professional AI prompt",
		Long: `promptcraft expands a short keyword list into a structured, platform-tuned
prompt for ChatGPT, Claude, Perplexity, DeepSeek, Gemini or any assistant.

Run without arguments in a terminal to start the interactive interface.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, found, err := config.Resolve(c.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			c.cfg = cfg
			c.configSeen = found

			// The interactive interface owns the terminal
			if cmd.Name() == "promptcraft" {
				return nil
			}

			logger, err := logging.New(cfg.Log, c.verbose)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return c.runInteractive()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/promptcraft/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.newGenerateCmd(),
		c.newAnalyzeCmd(),
		c.newCatalogCmd(),
		c.newServeCmd(),
	)
	return root
}

func (c *cli) runInteractive() error {
	app := tui.NewApp(c.cfg, c.configPath, !c.configSeen)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
