// mines is Minesweeper for the terminal.
//
// Usage:
//
//	mines <bombs>            - Play on a field the size of the terminal
//	mines serve              - Start SSH server for remote play
//	mines replay <bombs>     - Play a script of moves headlessly and print the board
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible field
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines <bombs>",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper on a field that fills the terminal.

Controls:
  Left click / Space / Enter  - Open a cell (on an opened number: open its neighbours)
  Right click / F             - Flag or unflag a cell
  Arrows, hjkl, wasd          - Move the cursor
  R                           - Restart
  Ctrl+S                      - Save a screenshot to ~/.mines/screenshots
  Q / Ctrl+C                  - Quit

Examples:
  mines 40
  mines 40 --seed 7
  mines 40 --config ./my-mines.yaml --log-file /tmp/mines.log
  mines serve --ssh :2222
  mines replay 10 --width 9 --height 9 --script moves.txt`,
	Args: bombsArg,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

var errBadBombs = errors.New("bomb count must be a positive integer")

// bombsArg requires exactly one positive integer argument.
func bombsArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a bomb count, got %d arguments", len(args))
	}
	_, err := parseBombs(args[0])
	return err
}

func parseBombs(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w, got %q", errBadBombs, s)
	}
	return n, nil
}

// runtimeConfig sizes the session for a screen and checks that the bombs
// fit.
func runtimeConfig(width, height, bombs int) (core.RuntimeConfig, error) {
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Bombs:   bombs,
		Seed:    flagSeed,
	}
	w, h := cfg.FieldSize()
	if err := minefield.Validate(w, h, bombs); err != nil {
		return cfg, fmt.Errorf("a %dx%d field cannot hold %d bombs: %w", w, h, bombs, err)
	}
	return cfg, nil
}

// newLogger builds the logger from the global flags. A closer is returned
// for the log file, if any.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	bombs, _ := parseBombs(args[0])

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := runtimeConfig(width, height, bombs)
	if err != nil {
		return err
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	theme, err := settings.GameTheme()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(io.Discard, "mines")
	if err != nil {
		return err
	}
	defer closeLog()

	cmd.SilenceUsage = true
	return tui.Run(tui.Options{
		Config:         cfg,
		Theme:          theme,
		BannerDuration: settings.Banner.Duration(),
		Logger:         logger,
		ScreenshotDir:  config.UserPath("screenshots"),
	})
}
