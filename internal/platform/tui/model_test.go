package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

func newTestModel(t *testing.T, screenshots string) Model {
	t.Helper()
	theme, err := config.DefaultConfig().GameTheme()
	require.NoError(t, err)

	m, err := NewModel(Options{
		Config:         core.RuntimeConfig{ScreenW: 20, ScreenH: 7, Bombs: 5, Seed: 7},
		Theme:          theme,
		BannerDuration: time.Millisecond,
		Renderer:       lipgloss.NewRenderer(io.Discard),
		ScreenshotDir:  screenshots,
	})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// findCell returns the first cell whose content satisfies pred.
func findCell(t *testing.T, f *minefield.Field, pred func(minefield.Content) bool) (int, int) {
	t.Helper()
	for y := range f.Height() {
		for x := range f.Width() {
			if pred(f.ContentAt(x, y)) {
				return x, y
			}
		}
	}
	t.Fatal("no matching cell")
	return 0, 0
}

func TestNewModelRejectsInvalidBombs(t *testing.T) {
	_, err := NewModel(Options{Config: core.RuntimeConfig{ScreenW: 3, ScreenH: 3, Bombs: 6}})
	assert.ErrorIs(t, err, minefield.ErrTooManyBombs)
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, "")
	x, y := m.Cursor()
	assert.Equal(t, 10, x)
	assert.Equal(t, 3, y)

	for range 30 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = update(t, m, runeKey('k'))
	}
	x, y = m.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	for range 30 {
		m, _ = update(t, m, runeKey('d'))
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	x, y = m.Cursor()
	assert.Equal(t, 19, x)
	assert.Equal(t, 5, y, "cursor stays on the field, above the status line")
}

func TestFlagAtCursor(t *testing.T) {
	m := newTestModel(t, "")
	x, y := m.Cursor()

	m, cmd := update(t, m, runeKey('f'))
	assert.Nil(t, cmd)
	assert.Equal(t, minefield.StateFlagged, m.Session().Field().StateAt(x, y))
	assert.Contains(t, m.View(), "Flags 1/5")

	m, _ = update(t, m, runeKey('f'))
	assert.Equal(t, minefield.StateClosed, m.Session().Field().StateAt(x, y))
}

func TestMouseLoseThenBanner(t *testing.T) {
	m := newTestModel(t, "")
	f := m.Session().Field()
	bx, by := findCell(t, f, func(c minefield.Content) bool { return c == minefield.ContentBomb })

	m, cmd := update(t, m, tea.MouseMsg{X: bx, Y: by, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.NotNil(t, cmd)
	assert.Equal(t, game.PhaseOver, m.Session().Phase())
	assert.Equal(t, game.OutcomeLose, m.Session().Outcome())
	assert.Contains(t, m.View(), "GameOver")

	x, y := m.Cursor()
	assert.Equal(t, bx, x)
	assert.Equal(t, by, y)

	// Input is ignored while the banner is up.
	m, _ = update(t, m, runeKey('f'))
	assert.Zero(t, m.Session().Field().Flags())

	msg := cmd()
	require.Equal(t, BannerDoneMsg{Game: 1}, msg)
	m, _ = update(t, m, msg)
	assert.Equal(t, game.PhasePlaying, m.Session().Phase())
	assert.Equal(t, 2, m.Session().Games())
	assert.NotContains(t, m.View(), "GameOver")
}

func TestRestartDuringBannerDropsStaleTick(t *testing.T) {
	m := newTestModel(t, "")
	bx, by := findCell(t, m.Session().Field(), func(c minefield.Content) bool { return c == minefield.ContentBomb })

	m, cmd := update(t, m, tea.MouseMsg{X: bx, Y: by, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.NotNil(t, cmd)

	m, _ = update(t, m, runeKey('r'))
	require.Equal(t, 2, m.Session().Games())

	sx, sy := findCell(t, m.Session().Field(), func(c minefield.Content) bool { return c != minefield.ContentBomb })
	m, _ = update(t, m, tea.MouseMsg{X: sx, Y: sy, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	opened := m.Session().Field().Opened()
	require.NotZero(t, opened)

	m, _ = update(t, m, BannerDoneMsg{Game: 1})
	assert.Equal(t, 2, m.Session().Games())
	assert.Equal(t, opened, m.Session().Field().Opened())
}

func TestMouseOutsideFieldKeepsCursor(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := update(t, m, tea.MouseMsg{X: 3, Y: 6, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	assert.Nil(t, cmd)

	x, y := m.Cursor()
	assert.Equal(t, 10, x)
	assert.Equal(t, 3, y)
	assert.Zero(t, m.Session().Field().Flags())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestResizeKeepsField(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 20, m.Session().Field().Width())
	assert.Equal(t, 6, m.Session().Field().Height())
}

func TestScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t, dir)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.status, "saved mines_")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, m.display.Screen().String(), string(data))
}

func TestScreenshotDisabled(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "screenshots disabled", m.status)
}
