// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Blue-steel DAW palette (dark, slightly desaturated).
var (
	zinc950 = lipgloss.Color("#181925")
	zinc900 = lipgloss.Color("#1e2030")
	zinc800 = lipgloss.Color("#32354a")
	zinc700 = lipgloss.Color("#444860")
	zinc500 = lipgloss.Color("#757b98")
	zinc400 = lipgloss.Color("#a6acc6")
	zinc200 = lipgloss.Color("#d3d8e9")

	// Mode accent colors.
	blue500  = lipgloss.Color("#669ef9")
	green500 = lipgloss.Color("#5dcf9e")
	amber500 = lipgloss.Color("#edb851")
	rose500  = lipgloss.Color("#e97693")
)

// Mode is the input mode of the piano roll, vim-style.
type Mode int

const (
	// ModeNormal navigates and edits the grid.
	ModeNormal Mode = iota
	// ModePlay turns the keyboard into a live instrument.
	ModePlay
)

// Label returns the badge text for the status bar.
func (m Mode) Label() string {
	switch m {
	case ModePlay:
		return "PLAY"
	default:
		return "NORMAL"
	}
}

// Color returns the badge accent for the status bar.
func (m Mode) Color() lipgloss.Color {
	switch m {
	case ModePlay:
		return green500
	default:
		return blue500
	}
}
