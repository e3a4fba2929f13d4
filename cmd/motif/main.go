// SPDX-License-Identifier: MIT

// motif renders tick-sequenced scores to WAV and hosts the terminal
// piano roll.
//
// Usage:
//
//	motif render -score song.yaml -o song.wav
//	motif demo -o demo.wav
//	motif ui
//	motif version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/motif-audio/motif/internal/devenv"
	"github.com/motif-audio/motif/internal/engine"
	xlog "github.com/motif-audio/motif/internal/log"
	"github.com/motif-audio/motif/internal/render"
	"github.com/motif-audio/motif/internal/score"
	"github.com/motif-audio/motif/internal/tui"
	"github.com/motif-audio/motif/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	xlog.Configure(xlog.Config{Service: "motif"})
	logger := xlog.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(ctx, os.Args[2:])
	case "demo":
		err = runDemo(ctx, os.Args[2:])
	case "ui":
		err = runUI(ctx, os.Args[2:])
	case "version":
		fmt.Printf("%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  motif render -score song.yaml -o song.wav")
	fmt.Fprintln(os.Stderr, "  motif demo [-o demo.wav]")
	fmt.Fprintln(os.Stderr, "  motif ui [-o motif.wav]")
	fmt.Fprintln(os.Stderr, "  motif version")
}

func runRender(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	scorePath := fs.String("score", "", "path to YAML score file")
	outPath := fs.String("o", "", "output WAV path (default: score name with .wav)")
	rate := fs.Float64("rate", 48000, "sample rate in Hz")
	tail := fs.Float64("tail", 1.0, "release tail in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scorePath == "" {
		fs.Usage()
		return fmt.Errorf("-score is required")
	}

	s, err := score.Load(*scorePath)
	if err != nil {
		return err
	}

	out := *outPath
	if out == "" {
		out = replaceExt(*scorePath, ".wav")
	}

	res, err := render.Render(ctx, s, out, render.Options{SampleRate: *rate, TailSeconds: *tail})
	if err != nil {
		return err
	}
	fmt.Printf("✓ wrote %s (%d frames, %s)\n", res.Path, res.Frames, res.Elapsed.Round(time.Millisecond))
	return nil
}

// runDemo renders the built-in arpeggio so the pipeline can be heard
// without writing a score first.
func runDemo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	outPath := fs.String("o", "demo.wav", "output WAV path")
	bpm := fs.Float64("bpm", 120, "tempo in BPM")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := score.Score{
		Title: "Demo Arpeggio",
		BPM:   *bpm,
		Tracks: []score.Track{{
			Name: "lead",
			Notes: []score.NoteSpec{
				{Note: "C4", Start: 0, Length: 4},
				{Note: "E4", Start: 1, Length: 3},
				{Note: "G4", Start: 2, Length: 2},
				{Note: "C5", Start: 3, Length: 1},
			},
		}},
	}
	if err := score.Validate(s); err != nil {
		return err
	}

	res, err := render.Render(ctx, s, *outPath, render.Options{})
	if err != nil {
		return err
	}
	fmt.Printf("✓ wrote %s (%d frames)\n", res.Path, res.Frames)
	return nil
}

func runUI(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ui", flag.ExitOnError)
	outPath := fs.String("o", "motif.wav", "WAV path for in-app renders")
	descriptorPath := fs.String("devenv", devenv.DefaultPath, "environment descriptor to watch")
	if err := fs.Parse(args); err != nil {
		return err
	}

	control := engine.NewPlaybackControl(256)
	opts := []tui.Option{tui.WithOutputPath(*outPath)}

	// Watch the environment descriptor while the UI runs; reloads show up
	// in the status bar. A missing or invalid descriptor is not fatal.
	if holder, ch, err := watchDescriptor(ctx, *descriptorPath); err != nil {
		logger := xlog.WithComponent("main")
		logger.Warn().Err(err).
			Str(xlog.FieldPath, *descriptorPath).
			Msg("descriptor not watched")
	} else {
		defer holder.Stop()
		opts = append(opts, tui.WithDescriptorUpdates(ch))
	}

	model := tui.New(control, opts...)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func watchDescriptor(ctx context.Context, path string) (*devenv.Holder, <-chan devenv.Resolved, error) {
	desc, err := devenv.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := devenv.Validate(desc); err != nil {
		return nil, nil, err
	}

	holder := devenv.NewHolder(desc, path)
	ch := make(chan devenv.Resolved, 1)
	holder.RegisterListener(ch)
	if err := holder.StartWatcher(ctx); err != nil {
		return nil, nil, err
	}
	return holder, ch, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
