package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	number := func(fg, bg string) StyleConfig {
		return StyleConfig{Fg: fg, Bg: bg, Bold: true}
	}
	return Config{
		Theme: ThemeConfig{
			Closed:  StyleConfig{Rune: "#", Fg: "yellow", Bg: "white", Bold: true},
			Flagged: StyleConfig{Rune: "?", Fg: "red", Bg: "white", Bold: true},
			Empty:   StyleConfig{Rune: " ", Fg: "black", Bg: "black", Bold: true},
			Bomb:    StyleConfig{Rune: "*", Fg: "black", Bg: "red", Bold: true},
			Numbers: []StyleConfig{
				number("blue", "black"),
				number("green", "black"),
				number("red", "black"),
				number("cyan", "black"),
				number("yellow", "black"),
				number("black", "cyan"),
				number("black", "blue"),
				number("black", "green"),
			},
			Banner: StyleConfig{Fg: "yellow", Bg: "black", Bold: true},
		},
		Banner: BannerConfig{
			Lose:       "GameOver",
			Win:        "You Win!",
			DurationMS: 1000,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
			Density:            0.15,
		},
	}
}
