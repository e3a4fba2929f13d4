// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/motif-audio/motif/internal/core"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	TempoUp   key.Binding
	TempoDown key.Binding
	Play      key.Binding
	Render    key.Binding
	Quit      key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle note")),
	TempoUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bpm up")),
	TempoDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "bpm down")),
	Play:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play mode")),
	Render:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "render")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// playKeys maps the middle keyboard row to one chromatic octave from C4,
// the usual DAW layout: naturals on the home row, accidentals above.
var playKeys = map[string]core.Note{
	"a": core.NoteC4,
	"w": core.NoteC4 + 1,
	"s": core.NoteC4 + 2,
	"e": core.NoteC4 + 3,
	"d": core.NoteC4 + 4,
	"f": core.NoteC4 + 5,
	"t": core.NoteC4 + 6,
	"g": core.NoteC4 + 7,
	"y": core.NoteC4 + 8,
	"h": core.NoteC4 + 9,
	"u": core.NoteC4 + 10,
	"j": core.NoteC4 + 11,
	"k": core.NoteC4 + 12,
}
