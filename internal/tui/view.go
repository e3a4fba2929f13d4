// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/motif-audio/motif/internal/core"
)

const cellWidth = 3

var (
	laneLabelStyle  = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(zinc500)
	sharpLabelStyle = laneLabelStyle.Foreground(zinc700)
	barLineStyle    = lipgloss.NewStyle().Foreground(zinc700)

	noteStyle     = lipgloss.NewStyle().Foreground(blue500)
	playheadStyle = lipgloss.NewStyle().Background(zinc800)
	cursorStyle   = lipgloss.NewStyle().Background(zinc200).Foreground(zinc950)

	evenLaneStyle = lipgloss.NewStyle().Background(zinc950).Foreground(zinc800)
	oddLaneStyle  = lipgloss.NewStyle().Background(zinc900).Foreground(zinc800)

	badgeStyle  = lipgloss.NewStyle().Foreground(zinc950).Bold(true).Padding(0, 1)
	bpmStyle    = lipgloss.NewStyle().Foreground(zinc500)
	posStyle    = lipgloss.NewStyle().Foreground(zinc400)
	statusStyle = lipgloss.NewStyle().Foreground(zinc400)
	barStyle    = lipgloss.NewStyle().Background(zinc900).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(zinc700)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	playheadBeat := -1
	if m.mode == ModePlay {
		playheadBeat = int(uint64(m.playhead)/core.TicksPerQuarter) % gridBeats
	}

	for lane := 0; lane < laneCount; lane++ {
		b.WriteString(m.laneView(lane, playheadBeat))
		b.WriteByte('\n')
	}

	b.WriteString(m.statusBar())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) laneView(lane, playheadBeat int) string {
	note := cell{lane: lane}.note()
	name := note.String()

	label := laneLabelStyle
	if strings.Contains(name, "#") {
		label = sharpLabelStyle
	}

	base := evenLaneStyle
	if lane%2 == 1 {
		base = oddLaneStyle
	}

	var row strings.Builder
	row.WriteString(label.Render(name))
	row.WriteByte(' ')

	for beat := 0; beat < gridBeats; beat++ {
		if beat%beatsPerBar == 0 {
			row.WriteString(barLineStyle.Render("│"))
		}

		c := cell{lane: lane, beat: beat}
		content := "·" + strings.Repeat(" ", cellWidth-1)
		if m.notes[c] {
			content = noteStyle.Render("▆▆") + " "
		}

		switch {
		case m.mode == ModeNormal && c == m.cursor:
			row.WriteString(cursorStyle.Render(content))
		case beat == playheadBeat:
			row.WriteString(playheadStyle.Render(content))
		default:
			row.WriteString(base.Render(content))
		}
	}

	return row.String()
}

func (m Model) statusBar() string {
	badge := badgeStyle.Background(m.mode.Color()).Render(m.mode.Label())
	bpm := bpmStyle.Render(fmt.Sprintf("♩ %g", m.bpm))
	pos := posStyle.Render(m.position())

	style := statusStyle
	switch {
	case m.rendering:
		style = style.Foreground(amber500)
	case strings.HasPrefix(m.status, "render failed"):
		style = style.Foreground(rose500)
	}
	status := style.Render(m.status)

	bar := strings.Join([]string{badge, bpm, pos, status}, "  ")
	if m.width > 0 {
		return barStyle.Width(m.width).Render(bar)
	}
	return barStyle.Render(bar)
}

func (m Model) helpLine() string {
	if m.mode == ModePlay {
		return "a..k play notes · esc back"
	}
	return "hjkl/arrows move · space toggle note · p play · r render · +/- bpm · q quit"
}
