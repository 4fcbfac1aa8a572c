// Package game drives a Minesweeper session: it turns input events into
// minefield operations, pushes the resulting cell changes to a Display and
// decides when a game is won or lost.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// Phase is the state of the session between events.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseOver          // banner shown, waiting for Start
)

// Step tells the caller what to do after Handle.
type Step int

const (
	StepContinue Step = iota
	StepOver          // game ended; pause, then call Start
	StepQuit
)

// Session owns one minefield and the game flow around it.
type Session struct {
	field   *minefield.Field
	display Display
	logger  *log.Logger

	phase   Phase
	outcome Outcome
	games   int
}

// NewSession creates a session with a field sized from cfg and starts the
// first game. A nil logger discards log output.
func NewSession(cfg core.RuntimeConfig, display Display, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := cfg.FieldSize()
	field, err := minefield.New(w, h, cfg.Bombs, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("game: cannot create field: %w", err)
	}

	s := &Session{
		field:   field,
		display: display,
		logger:  logger,
	}
	s.logger.Debug("session created", "width", w, "height", h, "bombs", cfg.Bombs, "seed", seed)
	s.Start()
	return s, nil
}

// Field returns the session's field for read-only queries.
func (s *Session) Field() *minefield.Field {
	return s.field
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Outcome returns how the last game ended. Only meaningful in PhaseOver.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Games returns the number of games started, including the current one.
func (s *Session) Games() int {
	return s.games
}

// Start regenerates the field and begins a new game.
func (s *Session) Start() {
	s.render(s.field.FillField())
	s.phase = PhasePlaying
	s.games++
	s.logger.Info("game started", "game", s.games, "bombs", s.field.Bombs())
}

// Handle applies one event. Open and flag requests are ignored while the
// end-of-game banner is up.
func (s *Session) Handle(ev core.Event) Step {
	switch ev.Action {
	case core.ActionQuit:
		s.logger.Info("quit", "game", s.games)
		return StepQuit
	case core.ActionRestart:
		s.logger.Debug("restart requested", "game", s.games)
		s.Start()
		return StepContinue
	}

	if s.phase != PhasePlaying {
		return StepContinue
	}

	switch ev.Action {
	case core.ActionOpen:
		return s.open(ev.X, ev.Y)
	case core.ActionFlag:
		return s.flag(ev.X, ev.Y)
	}
	return StepContinue
}

func (s *Session) open(x, y int) Step {
	result, changes := s.field.OpenCell(x, y)
	s.render(changes)

	switch result {
	case minefield.Unsuccessful:
		s.logger.Debug("open ignored", "x", x, "y", y)
		return StepContinue
	case minefield.Explosion:
		s.render(s.field.DrawAllBombs())
		return s.finish(OutcomeLose)
	}
	return s.checkWin()
}

func (s *Session) flag(x, y int) Step {
	if !s.field.InBounds(x, y) {
		s.logger.Debug("flag ignored", "x", x, "y", y)
		return StepContinue
	}
	s.render(s.field.FlagCell(x, y))
	return s.checkWin()
}

func (s *Session) checkWin() Step {
	if s.field.CheckWinCondition() {
		return s.finish(OutcomeWin)
	}
	return StepContinue
}

func (s *Session) finish(o Outcome) Step {
	s.phase = PhaseOver
	s.outcome = o
	s.display.RenderBanner(o)
	s.logger.Info("game over",
		"game", s.games,
		"outcome", o,
		"opened", s.field.Opened(),
		"flags", s.field.Flags(),
	)
	return StepOver
}

func (s *Session) render(changes []minefield.Change) {
	for _, c := range changes {
		s.display.RenderGlyph(c.X, c.Y, c.Glyph)
	}
}
