package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rook-computer/gifterm/internal/frame"
	"github.com/rook-computer/gifterm/internal/render"
	"github.com/rook-computer/gifterm/internal/state"
	"github.com/rook-computer/gifterm/internal/system"
)

// DefaultPlaceholder is shown while a build is running.
const DefaultPlaceholder = "Resizing..."

// Clock suspends playback between frames.
type Clock interface {
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Scheduler plays the raw frame sequence on a display, looping forever.
//
// Everything happens on the caller's goroutine. At the top of every frame
// the scheduler checks for cancellation, then polls the terminal size and
// rebuilds the whole animation if it changed. The sleep between frames is
// not interrupted; a cancel is noticed at the next frame boundary.
type Scheduler struct {
	Frames   []frame.RawFrame
	Pipeline Pipeline
	Display  render.Display
	Probe    system.SizeProbe
	Clock    Clock
	Logger   Logger

	// Placeholder is written while building; empty disables it.
	Placeholder string

	phase   state.Phase
	current *state.AnimationState
}

func New(frames []frame.RawFrame, pipeline Pipeline, display render.Display, probe system.SizeProbe) *Scheduler {
	return &Scheduler{
		Frames:   frames,
		Pipeline: pipeline,
		Display:  display,
		Probe:    probe,
		Clock:    realClock{},
		Logger:   NoopLogger{},
		phase:    state.BUILDING,
	}
}

// Phase returns the scheduler's current phase.
func (s *Scheduler) Phase() state.Phase { return s.phase }

// State returns the animation currently being played, if any.
func (s *Scheduler) State() *state.AnimationState { return s.current }

// Run plays until ctx is cancelled, which is a clean stop and returns nil.
// Build failures (only possible with diagnostics enabled) and display
// write errors end playback with an error.
func (s *Scheduler) Run(ctx context.Context) error {
	if len(s.Frames) == 0 {
		return errors.New("no frames to play")
	}
	if s.Clock == nil {
		s.Clock = realClock{}
	}
	if s.Logger == nil {
		s.Logger = NoopLogger{}
	}
	if err := s.Display.Start(); err != nil {
		s.Logger.Errorf("app", "display start failed: %v", err)
	}
	defer func() {
		if err := s.Display.Stop(); err != nil {
			s.Logger.Errorf("app", "display stop failed: %v", err)
		}
	}()

	index := 0
	for {
		if ctx.Err() != nil {
			s.setPhase(state.STOPPED)
			return nil
		}

		columns, rows := s.Probe.Size()
		if s.current.ResizePending(columns, rows) {
			if err := s.rebuild(columns, rows); err != nil {
				s.setPhase(state.STOPPED)
				return err
			}
			index = 0
		}

		if err := s.Display.Clear(); err != nil {
			s.setPhase(state.STOPPED)
			return fmt.Errorf("clear display: %w", err)
		}
		if err := s.Display.Show(s.current.Frames[index]); err != nil {
			s.setPhase(state.STOPPED)
			return fmt.Errorf("show frame %d: %w", index, err)
		}
		s.Clock.Sleep(s.current.Durations[index])
		index = (index + 1) % s.current.Len()
	}
}

func (s *Scheduler) rebuild(columns, rows int) error {
	s.setPhase(state.BUILDING)
	// Drop the stale cache before building so it is never shown again.
	s.current = nil
	if s.Placeholder != "" {
		if err := s.Display.Clear(); err == nil {
			_ = s.Display.Show(render.Rendered(s.Placeholder))
		}
	}
	started := time.Now()
	next, err := s.Pipeline.Build(s.Frames, columns, rows)
	if err != nil {
		s.Logger.Errorf("build", "build for %dx%d failed: %v", columns, rows, err)
		return fmt.Errorf("build: %w", err)
	}
	s.current = next
	s.Logger.Infof("build", "built %d frames for %dx%d in %s", next.Len(), columns, rows, time.Since(started))
	s.setPhase(state.PLAYING)
	return nil
}

func (s *Scheduler) setPhase(p state.Phase) {
	if s.phase == p {
		return
	}
	s.Logger.Infof("app", "phase %s -> %s", s.phase, p)
	s.phase = p
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
