package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
)

var (
	flagReplayWidth  int
	flagReplayHeight int
	flagScript       string
)

var replayCmd = &cobra.Command{
	Use:   "replay <bombs>",
	Short: "Play a script of moves without a terminal UI",
	Long: `Play a script of moves on a fixed-size field and print the board.

The script holds one command per line; blank lines and lines starting
with # are skipped:

  open X Y
  flag X Y
  restart
  quit

The board is printed whenever a game ends and once more at the end.
Use --seed to get the same field every time.

Examples:
  mines replay 10 --width 9 --height 9 --seed 1 --script moves.txt
  echo "open 4 4" | mines replay 10 --seed 1`,
	Args: bombsArg,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayWidth, "width", 9, "Field width")
	replayCmd.Flags().IntVar(&flagReplayHeight, "height", 9, "Field height")
	replayCmd.Flags().StringVar(&flagScript, "script", "", "Script file (default: stdin)")
}

// printingDisplay draws into a screen and prints it whenever a banner goes
// up.
type printingDisplay struct {
	*game.ScreenDisplay
	out io.Writer
}

func (d printingDisplay) RenderBanner(o game.Outcome) {
	d.ScreenDisplay.RenderBanner(o)
	fmt.Fprintf(d.out, "%s\n\n", d.Screen().String())
}

func runReplay(cmd *cobra.Command, args []string) error {
	bombs, _ := parseBombs(args[0])

	cfg, err := runtimeConfig(flagReplayWidth, flagReplayHeight+core.StatusLines, bombs)
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

	script := cmd.InOrStdin()
	if flagScript != "" {
		f, err := os.Open(flagScript)
		if err != nil {
			return fmt.Errorf("cannot open script: %w", err)
		}
		defer f.Close()
		script = f
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), "mines")
	if err != nil {
		return err
	}
	defer closeLog()

	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w, h := cfg.FieldSize()
	display := printingDisplay{
		ScreenDisplay: game.NewScreenDisplay(core.NewScreen(w, h), theme),
		out:           out,
	}

	session, err := game.NewSession(cfg, display, logger)
	if err != nil {
		return err
	}
	if err := session.Run(ctx, game.NewScriptSource(script), 0); err != nil {
		return err
	}

	f := session.Field()
	fmt.Fprintln(out, display.Screen().String())
	fmt.Fprintf(out, "games %d, flags %d/%d, opened %d/%d\n",
		session.Games(), f.Flags(), f.Bombs(), f.Opened(), f.Width()*f.Height()-f.Bombs())
	return nil
}
