// Package tui provides the Bubble Tea front end for mines: the board model,
// input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// BannerDoneMsg is sent when the end-of-game banner has been shown long
// enough. Game is the session's game counter when the banner went up.
type BannerDoneMsg struct {
	Game int
}

// bannerCmd returns a command that sends BannerDoneMsg after d.
func bannerCmd(d time.Duration, game int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return BannerDoneMsg{Game: game}
	})
}
