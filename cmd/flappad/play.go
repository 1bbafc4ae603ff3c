package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/padgame/flappad/internal/config"
	"github.com/padgame/flappad/internal/platform/tui"
	"github.com/padgame/flappad/internal/storage"
)

var (
	flagConfig        string
	flagLogFile       string
	flagSkipCountdown bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Mouse click  - Tap the screen
  Space/Enter  - Tap the screen center
  Q/Ctrl+C     - Quit

Examples:
  flappad play
  flappad play --seed 42
  flappad play --config ./flappad.yaml
  flappad play --skip-countdown`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
	playCmd.Flags().BoolVar(&flagSkipCountdown, "skip-countdown", false, "Allow tapping through the countdown")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = applyFlags(cfg)
	if flagSkipCountdown {
		cfg.Countdown.SkipOnTap = true
	}

	// The TUI owns the terminal, so play logs go to a file or nowhere.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, logErr := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", logErr)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "flappad"})
	}

	// Open score storage; the game still works without it.
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	model, err := tui.NewModel(cfg, store, seed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	model.SetSize(terminalSize())

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets the global flags override whatever the config file
// said.
func applyFlags(cfg config.Config) config.Config {
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg
}

// terminalSize probes stdout for the current size, falling back to a
// classic 80x24 until the first resize message arrives.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
