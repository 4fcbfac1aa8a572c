// Package config provides YAML-based configuration for the look of the
// board, the end-of-game banner and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// Config is the complete configuration file.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Banner BannerConfig `yaml:"banner"`
	SSH    SSHConfig    `yaml:"ssh"`
}

// StyleConfig describes colors by name; see core.ParseColor.
type StyleConfig struct {
	Rune string `yaml:"rune,omitempty"` // ignored where a rune is implied (numbers, banner)
	Fg   string `yaml:"fg"`
	Bg   string `yaml:"bg"`
	Bold bool   `yaml:"bold"`
}

// ThemeConfig defines how each kind of cell is drawn.
type ThemeConfig struct {
	Closed  StyleConfig   `yaml:"closed"`
	Flagged StyleConfig   `yaml:"flagged"`
	Empty   StyleConfig   `yaml:"empty"`
	Bomb    StyleConfig   `yaml:"bomb"`
	Numbers []StyleConfig `yaml:"numbers"` // counts 1 through 8
	Banner  StyleConfig   `yaml:"banner"`
}

// BannerConfig defines the end-of-game banner.
type BannerConfig struct {
	Lose       string `yaml:"lose"`
	Win        string `yaml:"win"`
	DurationMS int    `yaml:"duration_ms"`
}

// Duration returns how long the banner stays up before the next game.
func (b BannerConfig) Duration() time.Duration {
	return time.Duration(b.DurationMS) * time.Millisecond
}

// SSHConfig defines the defaults of the SSH server.
type SSHConfig struct {
	Address            string  `yaml:"address"`
	HostKey            string  `yaml:"host_key"`
	IdleTimeoutMinutes int     `yaml:"idle_timeout_minutes"`
	Density            float64 `yaml:"density"` // share of cells that are bombs when no count is given
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if _, err := c.Theme.Build(c.Banner); err != nil {
		return err
	}
	if c.Banner.DurationMS <= 0 {
		return fmt.Errorf("config: banner.duration_ms must be positive, got %d", c.Banner.DurationMS)
	}
	if c.SSH.Density <= 0 || c.SSH.Density >= 1 {
		return fmt.Errorf("config: ssh.density must be between 0 and 1, got %g", c.SSH.Density)
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must be positive, got %d", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}

// Build converts the theme into the form the game draws with.
func (t ThemeConfig) Build(banner BannerConfig) (game.Theme, error) {
	var th game.Theme

	if len(t.Numbers) != 8 {
		return th, fmt.Errorf("config: theme.numbers needs 8 entries, got %d", len(t.Numbers))
	}
	if banner.Lose == "" || banner.Win == "" {
		return th, errors.New("config: banner.lose and banner.win must not be empty")
	}

	cells := []themeCell{
		{minefield.GlyphClosed, "closed", t.Closed, 0},
		{minefield.GlyphFlagged, "flagged", t.Flagged, 0},
		{minefield.GlyphEmpty, "empty", t.Empty, 0},
		{minefield.GlyphBomb, "bomb", t.Bomb, 0},
	}
	for i, n := range t.Numbers {
		name := fmt.Sprintf("numbers[%d]", i)
		cells = append(cells, themeCell{minefield.GlyphOne + minefield.Glyph(i), name, n, rune('1' + i)})
	}

	for _, c := range cells {
		cell, err := c.build()
		if err != nil {
			return th, fmt.Errorf("config: theme.%s: %w", c.name, err)
		}
		th.Glyphs[c.glyph] = cell
	}

	bannerStyle, err := t.Banner.style()
	if err != nil {
		return th, fmt.Errorf("config: theme.banner: %w", err)
	}
	th.BannerStyle = bannerStyle
	th.LoseMessage = banner.Lose
	th.WinMessage = banner.Win
	return th, nil
}

// themeCell pairs a glyph with its configuration. A zero ch means the rune
// comes from the configuration.
type themeCell struct {
	glyph minefield.Glyph
	name  string
	cfg   StyleConfig
	ch    rune
}

func (c themeCell) build() (core.Cell, error) {
	style, err := c.cfg.style()
	if err != nil {
		return core.Cell{}, err
	}
	ch := c.ch
	if ch == 0 {
		if utf8.RuneCountInString(c.cfg.Rune) != 1 {
			return core.Cell{}, fmt.Errorf("rune must be a single character, got %q", c.cfg.Rune)
		}
		ch, _ = utf8.DecodeRuneInString(c.cfg.Rune)
	}
	return core.Cell{Rune: ch, Style: style}, nil
}

func (s StyleConfig) style() (core.Style, error) {
	fg, err := core.ParseColor(s.Fg)
	if err != nil {
		return core.Style{}, err
	}
	bg, err := core.ParseColor(s.Bg)
	if err != nil {
		return core.Style{}, err
	}
	return core.Style{Fg: fg, Bg: bg, Bold: s.Bold}, nil
}

// GameTheme builds the theme with the configured banner messages.
func (c Config) GameTheme() (game.Theme, error) {
	return c.Theme.Build(c.Banner)
}
