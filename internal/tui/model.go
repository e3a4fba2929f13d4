// SPDX-License-Identifier: MIT

// Package tui is the terminal piano roll. It follows the bubbletea
// model/update/view loop: key presses become messages, the model mutates,
// the view re-renders the grid and status bar.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/motif-audio/motif/internal/core"
	"github.com/motif-audio/motif/internal/devenv"
	"github.com/motif-audio/motif/internal/engine"
	xlog "github.com/motif-audio/motif/internal/log"
	"github.com/motif-audio/motif/internal/pulse"
	"github.com/motif-audio/motif/internal/render"
	"github.com/motif-audio/motif/internal/score"
)

const (
	gridBeats   = 16
	beatsPerBar = 4

	// laneTop is the highest lane (B4); lanes descend chromatically to C3.
	laneTop   = core.Note(71)
	laneCount = 24

	defaultBPM = 120.0
	minBPM     = 20.0
	maxBPM     = 300.0

	liveSampleRate = 48000.0

	playTickInterval = 50 * time.Millisecond

	// liveBlockFrames is one play tick's worth of audio at 48kHz.
	liveBlockFrames = 2400

	// liveNoteLength is how long a live key press sounds before its
	// note-off is queued.
	liveNoteLength = 250 * time.Millisecond
)

// cell addresses one grid position: a lane (pitch) and a beat (time).
type cell struct {
	lane int
	beat int
}

func (c cell) note() core.Note {
	return laneTop - core.Note(c.lane)
}

type playTickMsg time.Time

type noteOffMsg struct {
	note core.Note
}

type renderDoneMsg struct {
	result render.Result
	err    error
}

// planUpdateMsg carries a freshly resolved descriptor from the hot-reload
// holder into the update loop.
type planUpdateMsg devenv.Resolved

// RenderFunc renders a score to a WAV file. Injectable so tests can avoid
// touching the filesystem.
type RenderFunc func(score.Score, string) (render.Result, error)

// Model is the bubbletea model holding all piano roll state.
type Model struct {
	mode   Mode
	bpm    float64
	cursor cell
	notes  map[cell]bool

	control  *engine.PlaybackControl
	clock    engine.Clock
	renderer RenderFunc
	logger   zerolog.Logger

	// The live path: each play tick drains the control queue into the
	// synth and renders one block, so voices and envelopes advance in
	// real time even without a device attached.
	synth   *pulse.Synth
	liveBuf *engine.Buffer
	pending []engine.RoutedEvent

	planCh <-chan devenv.Resolved

	// playStart anchors the moving playhead while in PLAY mode.
	playStart time.Time
	playhead  core.Tick

	outPath   string
	rendering bool
	status    string

	width  int
	height int
}

// Option customizes Model construction.
type Option func(*Model)

// WithRenderer overrides the render function.
func WithRenderer(fn RenderFunc) Option {
	return func(m *Model) {
		if fn != nil {
			m.renderer = fn
		}
	}
}

// WithOutputPath sets where `r` writes the rendered WAV.
func WithOutputPath(path string) Option {
	return func(m *Model) {
		if path != "" {
			m.outPath = path
		}
	}
}

// WithDescriptorUpdates subscribes the status bar to resolved descriptor
// plans from a devenv.Holder listener channel.
func WithDescriptorUpdates(ch <-chan devenv.Resolved) Option {
	return func(m *Model) {
		m.planCh = ch
	}
}

// New creates the piano roll model. Live events go to control; nil is
// allowed and drops them.
func New(control *engine.PlaybackControl, opts ...Option) Model {
	m := Model{
		mode:     ModeNormal,
		bpm:      defaultBPM,
		notes:    make(map[cell]bool),
		control:  control,
		clock:    engine.NewClock(liveSampleRate),
		renderer: defaultRenderer,
		logger:   xlog.WithComponent("tui"),
		synth:    pulse.NewSynth(),
		liveBuf:  engine.NewBuffer(2, liveBlockFrames),
		outPath:  "motif.wav",
		status:   "ready",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

func defaultRenderer(s score.Score, path string) (render.Result, error) {
	return render.Render(context.Background(), s, path, render.Options{})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.planCh != nil {
		return m.waitForPlan()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModePlay:
			return m.updatePlay(msg)
		default:
			return m.updateNormal(msg)
		}

	case playTickMsg:
		if m.mode != ModePlay {
			return m, nil
		}
		elapsed := time.Since(m.playStart).Seconds()
		sample := uint64(elapsed * m.clock.SampleRate())
		m.playhead = m.clock.SampleToTick(sample, m.bpm)
		m = m.driveSynth()
		return m, m.playTick()

	case noteOffMsg:
		if m.control != nil {
			if err := m.control.Send(0, engine.NoteOff(msg.note)); err != nil {
				m.logger.Debug().Err(err).Msg("dropping live note-off")
			}
		}
		return m, nil

	case planUpdateMsg:
		plan := devenv.Resolved(msg)
		m.status = fmt.Sprintf("devenv reloaded: %d hooks", len(plan.HookNames()))
		return m, m.waitForPlan()

	case renderDoneMsg:
		m.rendering = false
		if msg.err != nil {
			m.status = fmt.Sprintf("render failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("wrote %s (%d frames)", msg.result.Path, msg.result.Frames)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor.lane > 0 {
			m.cursor.lane--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor.lane < laneCount-1 {
			m.cursor.lane++
		}
	case key.Matches(msg, keys.Left):
		if m.cursor.beat > 0 {
			m.cursor.beat--
		}
	case key.Matches(msg, keys.Right):
		if m.cursor.beat < gridBeats-1 {
			m.cursor.beat++
		}

	case key.Matches(msg, keys.Toggle):
		if m.notes[m.cursor] {
			delete(m.notes, m.cursor)
		} else {
			m.notes[m.cursor] = true
		}

	case key.Matches(msg, keys.TempoUp):
		m.bpm = min(m.bpm+5, maxBPM)
	case key.Matches(msg, keys.TempoDown):
		m.bpm = max(m.bpm-5, minBPM)

	case key.Matches(msg, keys.Play):
		m.mode = ModePlay
		m.playStart = time.Now()
		m.playhead = 0
		m.status = "live keys: a..k play C4..C5"
		return m, m.playTick()

	case key.Matches(msg, keys.Render):
		if m.rendering {
			return m, nil
		}
		if len(m.notes) == 0 {
			m.status = "nothing to render"
			return m, nil
		}
		m.rendering = true
		m.status = "rendering..."
		return m, m.renderCmd()
	}
	return m, nil
}

func (m Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.mode = ModeNormal
		m.playhead = 0
		m.status = "ready"
		m.synth.Reset()
		return m, nil

	default:
		note, ok := playKeys[msg.String()]
		if !ok {
			return m, nil
		}
		m.status = note.String()
		if m.control == nil {
			return m, nil
		}
		if err := m.control.Send(0, engine.NoteOn(note, core.MaxVelocity)); err != nil {
			m.status = "event queue full"
			m.logger.Warn().Err(err).Msg("dropping live event")
			return m, nil
		}
		return m, scheduleNoteOff(note)
	}
}

// driveSynth services the live path for one play tick: drain the control
// queue, apply the events, render one block. The audio itself goes nowhere
// (device output is out of scope) but voices and envelopes stay current,
// and the queue never backs up.
func (m Model) driveSynth() Model {
	if m.control == nil {
		return m
	}

	m.pending = m.control.Drain(m.pending[:0])
	events := make([]engine.ScheduledEvent, 0, len(m.pending))
	for _, routed := range m.pending {
		events = append(events, engine.ScheduledEvent{Event: routed.Event})
	}

	m.liveBuf.Prepare(liveBlockFrames)
	engine.EvaluateNode(m.synth, nil, m.liveBuf, events, liveSampleRate)
	return m
}

func scheduleNoteOff(note core.Note) tea.Cmd {
	return tea.Tick(liveNoteLength, func(time.Time) tea.Msg {
		return noteOffMsg{note: note}
	})
}

func (m Model) playTick() tea.Cmd {
	return tea.Tick(playTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m Model) waitForPlan() tea.Cmd {
	ch := m.planCh
	return func() tea.Msg {
		plan, ok := <-ch
		if !ok {
			return nil
		}
		return planUpdateMsg(plan)
	}
}

func (m Model) renderCmd() tea.Cmd {
	s := m.toScore()
	path := m.outPath
	renderer := m.renderer
	return func() tea.Msg {
		res, err := renderer(s, path)
		return renderDoneMsg{result: res, err: err}
	}
}

// toScore compiles the grid into a single-track score, one beat per cell.
func (m Model) toScore() score.Score {
	s := score.Score{
		Title:  "Piano Roll",
		BPM:    m.bpm,
		Tracks: []score.Track{{Name: "grid"}},
	}
	for c := range m.notes {
		s.Tracks[0].Notes = append(s.Tracks[0].Notes, score.NoteSpec{
			Note:  c.note().String(),
			Start: float64(c.beat),
		})
	}
	return s
}

// position formats the transport as bar : beat : tick. In NORMAL mode the
// cursor is the transport; in PLAY mode the moving playhead is.
func (m Model) position() string {
	var tick core.Tick
	if m.mode == ModePlay {
		tick = m.playhead
	} else {
		tick = core.FromQuarters(uint64(m.cursor.beat))
	}

	beats := uint64(tick) / core.TicksPerQuarter
	rem := uint64(tick) % core.TicksPerQuarter
	return fmt.Sprintf("%03d : %d : %03d", beats/beatsPerBar+1, beats%beatsPerBar+1, rem)
}
