package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rook-computer/gifterm/internal/config"
	"github.com/rook-computer/gifterm/internal/diag"
	"github.com/rook-computer/gifterm/internal/frame"
	"github.com/rook-computer/gifterm/internal/render"
	"github.com/rook-computer/gifterm/internal/state"
)

type recordingDisplay struct {
	shown   []render.Rendered
	clears  int
	started bool
	stopped bool
}

func (d *recordingDisplay) Start() error { d.started = true; return nil }
func (d *recordingDisplay) Stop() error  { d.stopped = true; return nil }
func (d *recordingDisplay) Clear() error { d.clears++; return nil }
func (d *recordingDisplay) Show(f render.Rendered) error {
	d.shown = append(d.shown, f)
	return nil
}

// scriptedProbe returns sizes[i] on the i-th poll and repeats the last one.
type scriptedProbe struct {
	sizes [][2]int
	polls int
}

func (p *scriptedProbe) Size() (int, int) {
	i := p.polls
	if i >= len(p.sizes) {
		i = len(p.sizes) - 1
	}
	p.polls++
	return p.sizes[i][0], p.sizes[i][1]
}

// fakeClock records sleeps and cancels after a fixed number of them.
type fakeClock struct {
	sleeps      []time.Duration
	cancelAfter int
	cancel      context.CancelFunc
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	if len(c.sleeps) == c.cancelAfter {
		c.cancel()
	}
}

func testFrames() []frame.RawFrame {
	table := frame.ColorTable{{A: 0}, {R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	mk := func(fill uint8, delay time.Duration) frame.RawFrame {
		pix := make([]uint8, 8*4)
		for i := range pix {
			pix[i] = fill
		}
		pix[0] = 0
		return frame.RawFrame{Width: 8, Height: 4, Pix: pix, Table: table, Delay: delay}
	}
	return []frame.RawFrame{mk(1, 100*time.Millisecond), mk(2, 40*time.Millisecond), mk(3, 60*time.Millisecond)}
}

func newTestScheduler(t *testing.T, cfg config.PlaybackConfig, probe *scriptedProbe, sleeps int) (*Scheduler, *recordingDisplay, *fakeClock) {
	t.Helper()
	pipeline, err := NewPipeline(cfg, NoopLogger{})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	display := &recordingDisplay{}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	clock := &fakeClock{cancelAfter: sleeps, cancel: cancel}
	s := New(testFrames(), pipeline, display, probe)
	s.Clock = clock
	if err := s.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	return s, display, clock
}

func TestSchedulerLoopsUntilCancelled(t *testing.T) {
	probe := &scriptedProbe{sizes: [][2]int{{80, 24}}}
	s, display, clock := newTestScheduler(t, config.Defaults(), probe, 7)

	if s.Phase() != state.STOPPED {
		t.Errorf("phase = %v, want stopped", s.Phase())
	}
	if !display.started || !display.stopped {
		t.Errorf("display not started/stopped")
	}
	if len(display.shown) != 7 || display.clears != 7 {
		t.Fatalf("shown %d frames with %d clears, want 7/7", len(display.shown), display.clears)
	}
	frames := s.State().Frames
	for i, got := range display.shown {
		if got != frames[i%3] {
			t.Errorf("frame %d is not cached frame %d", i, i%3)
		}
	}
	want := []time.Duration{100, 40, 60, 100, 40, 60, 100}
	for i, d := range clock.sleeps {
		if d != want[i]*time.Millisecond {
			t.Errorf("sleep %d = %v, want %v", i, d, want[i]*time.Millisecond)
		}
	}
	if probe.polls != 7 {
		t.Errorf("probe polled %d times, want once per frame", probe.polls)
	}
}

func TestSchedulerSpeedHalvesDurations(t *testing.T) {
	cfg := config.Defaults()
	_, _, normal := newTestScheduler(t, cfg, &scriptedProbe{sizes: [][2]int{{80, 24}}}, 3)
	cfg.Speed = 2
	_, _, fast := newTestScheduler(t, cfg, &scriptedProbe{sizes: [][2]int{{80, 24}}}, 3)

	for i := range normal.sleeps {
		if fast.sleeps[i]*2 != normal.sleeps[i] {
			t.Errorf("sleep %d: fast %v, normal %v", i, fast.sleeps[i], normal.sleeps[i])
		}
	}
}

func TestBuildReverse(t *testing.T) {
	cfg := config.Defaults()
	forward, _ := NewPipeline(cfg, NoopLogger{})
	cfg.Reverse = true
	backward, _ := NewPipeline(cfg, NoopLogger{})

	fs, err := forward.Build(testFrames(), 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	bs, err := backward.Build(testFrames(), 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	n := fs.Len()
	for i := 0; i < n; i++ {
		if bs.Frames[i] != fs.Frames[n-1-i] || bs.Durations[i] != fs.Durations[n-1-i] {
			t.Errorf("reversed frame %d does not match forward frame %d", i, n-1-i)
		}
	}
}

func TestSchedulerRebuildsOnResize(t *testing.T) {
	// 8 pixels need 16 columns; the third poll reports a terminal that only fits 5.
	probe := &scriptedProbe{sizes: [][2]int{{80, 24}, {80, 24}, {10, 24}}}
	cfg := config.Defaults()
	s, display, _ := newTestScheduler(t, cfg, probe, 4)

	pipeline, _ := NewPipeline(cfg, NoopLogger{})
	wide, _ := pipeline.Build(testFrames(), 80, 24)
	narrow, _ := pipeline.Build(testFrames(), 10, 24)

	if display.shown[0] != wide.Frames[0] || display.shown[1] != wide.Frames[1] {
		t.Fatalf("first frames not from the initial build")
	}
	if display.shown[2] != narrow.Frames[0] {
		t.Fatalf("frame after resize is not the first frame of the rebuilt sequence")
	}
	if display.shown[3] != narrow.Frames[1] {
		t.Fatalf("playback did not continue in the rebuilt sequence")
	}
	if narrow.Frames[0] == wide.Frames[0] {
		t.Fatalf("resize did not change the rendered frame")
	}
	if got := len(narrow.Frames[0].Rows()); got != 2 {
		t.Errorf("rebuilt frame has %d rows, want 2", got)
	}
	if got := s.State(); got.Columns != 10 || got.Rows != 24 {
		t.Errorf("state is %dx%d, want 10x24", got.Columns, got.Rows)
	}
}

func TestSchedulerShowsPlaceholderWhileBuilding(t *testing.T) {
	pipeline, _ := NewPipeline(config.Defaults(), NoopLogger{})
	display := &recordingDisplay{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(testFrames(), pipeline, display, &scriptedProbe{sizes: [][2]int{{80, 24}}})
	s.Clock = &fakeClock{cancelAfter: 1, cancel: cancel}
	s.Placeholder = DefaultPlaceholder
	if err := s.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(display.shown) != 2 || display.shown[0] != render.Rendered(DefaultPlaceholder) {
		t.Fatalf("shown = %q", display.shown)
	}
}

func TestSchedulerStopsBeforeFirstFrameWhenCancelled(t *testing.T) {
	pipeline, _ := NewPipeline(config.Defaults(), NoopLogger{})
	display := &recordingDisplay{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(testFrames(), pipeline, display, &scriptedProbe{sizes: [][2]int{{80, 24}}})
	if err := s.Run(ctx); err != nil {
		t.Fatalf("cancellation must be a clean stop, got %v", err)
	}
	if len(display.shown) != 0 {
		t.Fatalf("shown %d frames after cancel", len(display.shown))
	}
}

func TestSchedulerHaltsOnIntegrityError(t *testing.T) {
	cfg := config.Defaults()
	cfg.Debug = true
	pipeline, _ := NewPipeline(cfg, NoopLogger{})
	frames := testFrames()
	frames[1].Pix[3] = 200

	s := New(frames, pipeline, &recordingDisplay{}, &scriptedProbe{sizes: [][2]int{{80, 24}}})
	err := s.Run(context.Background())
	var integrity *diag.IntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("got %v, want integrity error", err)
	}
	if s.Phase() != state.STOPPED {
		t.Errorf("phase = %v", s.Phase())
	}
}

func TestSchedulerRejectsEmptyInput(t *testing.T) {
	s := New(nil, Pipeline{}, &recordingDisplay{}, &scriptedProbe{sizes: [][2]int{{80, 24}}})
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("build", "built %d frames", 3)
	l.Errorf("app", "oops")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], " [INFO] build: built 3 frames") || !strings.HasSuffix(lines[1], " [ERROR] app: oops") {
		t.Fatalf("unexpected log lines: %q", lines)
	}
}
