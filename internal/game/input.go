package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// InputSource produces events one at a time. Next returns io.EOF when the
// source is exhausted.
type InputSource interface {
	Next(ctx context.Context) (core.Event, error)
}

// Run feeds events from src into the session until a quit event, the end of
// the source, or cancellation of ctx. After a game ends it waits for pause
// before starting the next one; no events are read during the pause.
func (s *Session) Run(ctx context.Context, src InputSource, pause time.Duration) error {
	for {
		ev, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch s.Handle(ev) {
		case StepQuit:
			return nil
		case StepOver:
			if err := sleep(ctx, pause); err != nil {
				return err
			}
			s.Start()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ScriptSource reads events from text, one per line:
//
//	open X Y
//	flag X Y
//	restart
//	quit
//
// Blank lines and lines starting with '#' are skipped.
type ScriptSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewScriptSource creates a source reading from r.
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{scanner: bufio.NewScanner(r)}
}

// Next implements InputSource.
func (s *ScriptSource) Next(ctx context.Context) (core.Event, error) {
	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return core.Event{}, err
		}
		s.line++

		text := strings.TrimSpace(s.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := ParseEvent(text)
		if err != nil {
			return core.Event{}, fmt.Errorf("script line %d: %w", s.line, err)
		}
		return ev, nil
	}
	if err := s.scanner.Err(); err != nil {
		return core.Event{}, fmt.Errorf("script: %w", err)
	}
	return core.Event{}, io.EOF
}

// ParseEvent parses a single script command.
func ParseEvent(text string) (core.Event, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return core.Event{}, errors.New("empty command")
	}

	switch cmd := fields[0]; cmd {
	case "open", "flag":
		if len(fields) != 3 {
			return core.Event{}, fmt.Errorf("%s needs x and y, got %q", cmd, text)
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return core.Event{}, fmt.Errorf("bad x %q: %w", fields[1], err)
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return core.Event{}, fmt.Errorf("bad y %q: %w", fields[2], err)
		}
		if cmd == "open" {
			return core.OpenAt(x, y), nil
		}
		return core.FlagAt(x, y), nil
	case "restart":
		return core.Restart(), nil
	case "quit":
		return core.Quit(), nil
	default:
		return core.Event{}, fmt.Errorf("unknown command %q", cmd)
	}
}
