package game

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

type recorder struct {
	glyphs  map[[2]int]minefield.Glyph
	draws   int
	banners []Outcome
}

func newRecorder() *recorder {
	return &recorder{glyphs: make(map[[2]int]minefield.Glyph)}
}

func (r *recorder) RenderGlyph(x, y int, g minefield.Glyph) {
	r.glyphs[[2]int{x, y}] = g
	r.draws++
}

func (r *recorder) RenderBanner(o Outcome) {
	r.banners = append(r.banners, o)
}

func newTestSession(t *testing.T, w, h, bombs int) (*Session, *recorder) {
	t.Helper()
	rec := newRecorder()
	cfg := core.RuntimeConfig{ScreenW: w, ScreenH: h + core.StatusLines, Bombs: bombs, Seed: 7}
	s, err := NewSession(cfg, rec, nil)
	require.NoError(t, err)
	return s, rec
}

// cells splits the field into bomb and safe coordinates.
func cells(f *minefield.Field) (bombs, safe [][2]int) {
	for y := range f.Height() {
		for x := range f.Width() {
			if f.ContentAt(x, y) == minefield.ContentBomb {
				bombs = append(bombs, [2]int{x, y})
			} else {
				safe = append(safe, [2]int{x, y})
			}
		}
	}
	return bombs, safe
}

func TestNewSessionValidates(t *testing.T) {
	_, err := NewSession(core.RuntimeConfig{ScreenW: 3, ScreenH: 4, Bombs: 9}, newRecorder(), nil)
	assert.ErrorIs(t, err, minefield.ErrTooManyBombs)

	_, err = NewSession(core.RuntimeConfig{ScreenW: 3, ScreenH: 4, Bombs: 0}, newRecorder(), nil)
	assert.ErrorIs(t, err, minefield.ErrNoBombs)
}

func TestNewSessionDrawsClosedField(t *testing.T) {
	s, rec := newTestSession(t, 6, 4, 5)

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.Games())
	assert.Equal(t, 6, s.Field().Width())
	assert.Equal(t, 4, s.Field().Height())
	assert.Equal(t, 24, rec.draws)
	for _, g := range rec.glyphs {
		assert.Equal(t, minefield.GlyphClosed, g)
	}
}

func TestSessionLose(t *testing.T) {
	s, rec := newTestSession(t, 8, 8, 10)
	bombs, safe := cells(s.Field())

	step := s.Handle(core.OpenAt(bombs[0][0], bombs[0][1]))
	require.Equal(t, StepOver, step)
	assert.Equal(t, PhaseOver, s.Phase())
	assert.Equal(t, OutcomeLose, s.Outcome())
	assert.Equal(t, []Outcome{OutcomeLose}, rec.banners)
	for _, b := range bombs {
		assert.Equal(t, minefield.GlyphBomb, rec.glyphs[b], "bomb at %v not revealed", b)
	}

	// Board is frozen until the next game.
	draws := rec.draws
	assert.Equal(t, StepContinue, s.Handle(core.OpenAt(safe[0][0], safe[0][1])))
	assert.Equal(t, StepContinue, s.Handle(core.FlagAt(safe[0][0], safe[0][1])))
	assert.Equal(t, draws, rec.draws)

	s.Start()
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 2, s.Games())
	assert.Zero(t, s.Field().Opened())
}

func TestSessionWin(t *testing.T) {
	s, rec := newTestSession(t, 8, 8, 10)
	bombs, safe := cells(s.Field())

	for _, b := range bombs {
		require.Equal(t, StepContinue, s.Handle(core.FlagAt(b[0], b[1])))
	}

	var step Step
	for _, c := range safe {
		if s.Phase() != PhasePlaying {
			break
		}
		step = s.Handle(core.OpenAt(c[0], c[1]))
	}
	require.Equal(t, StepOver, step)
	assert.Equal(t, OutcomeWin, s.Outcome())
	assert.Equal(t, []Outcome{OutcomeWin}, rec.banners)
}

func TestSessionIgnoresInvalidCoordinates(t *testing.T) {
	s, rec := newTestSession(t, 5, 5, 3)
	draws := rec.draws

	assert.Equal(t, StepContinue, s.Handle(core.OpenAt(-1, 2)))
	assert.Equal(t, StepContinue, s.Handle(core.FlagAt(5, 0)))
	assert.Equal(t, StepContinue, s.Handle(core.FlagAt(0, 99)))
	assert.Equal(t, draws, rec.draws)
	assert.Zero(t, s.Field().Flags())
}

func TestSessionRestartAndQuit(t *testing.T) {
	s, rec := newTestSession(t, 5, 5, 3)
	_, safe := cells(s.Field())
	s.Handle(core.OpenAt(safe[0][0], safe[0][1]))

	assert.Equal(t, StepContinue, s.Handle(core.Restart()))
	assert.Equal(t, 2, s.Games())
	assert.Zero(t, s.Field().Opened())
	assert.Equal(t, minefield.GlyphClosed, rec.glyphs[safe[0]])

	assert.Equal(t, StepQuit, s.Handle(core.Quit()))
}

func TestSessionRun(t *testing.T) {
	s, rec := newTestSession(t, 6, 6, 4)
	bombs, _ := cells(s.Field())

	script := fmt.Sprintf("# lose straight away\nopen %d %d\n\nflag 0 0\nquit\nopen 0 0\n", bombs[0][0], bombs[0][1])
	err := s.Run(context.Background(), NewScriptSource(strings.NewReader(script)), 0)
	require.NoError(t, err)

	assert.Equal(t, []Outcome{OutcomeLose}, rec.banners)
	assert.Equal(t, 2, s.Games(), "a new game starts after the pause")
	assert.Equal(t, 1, s.Field().Flags(), "flag after restart applies to the new game")
	assert.Zero(t, s.Field().Opened(), "events after quit are not read")
}

func TestSessionRunStopsOnEOF(t *testing.T) {
	s, _ := newTestSession(t, 4, 4, 2)
	err := s.Run(context.Background(), NewScriptSource(strings.NewReader("flag 1 1\n")), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Field().Flags())
}

func TestSessionRunCancelledDuringPause(t *testing.T) {
	s, _ := newTestSession(t, 4, 4, 2)
	bombs, _ := cells(s.Field())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	script := fmt.Sprintf("open %d %d\n", bombs[0][0], bombs[0][1])
	err := s.Run(ctx, NewScriptSource(strings.NewReader(script)), time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PhaseOver, s.Phase())
}

func TestSessionRunReportsScriptErrors(t *testing.T) {
	s, _ := newTestSession(t, 4, 4, 2)
	err := s.Run(context.Background(), NewScriptSource(strings.NewReader("flag 1 1\njump\n")), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script line 2")
}
