package state

import (
	"slices"
	"time"

	"github.com/rook-computer/gifterm/internal/render"
)

type Phase int

const (
	BUILDING Phase = iota
	PLAYING
	STOPPED
)

func (p Phase) String() string {
	switch p {
	case BUILDING:
		return "building"
	case PLAYING:
		return "playing"
	case STOPPED:
		return "stopped"
	}
	return "unknown"
}

// AnimationState is the output of one build. It is replaced wholesale on
// rebuild and never modified after construction.
type AnimationState struct {
	Frames    []render.Rendered
	Durations []time.Duration
	Columns   int
	Rows      int
}

// New copies frames and durations into a fresh state for a columns x rows
// terminal. reverse flips the order of both sequences.
func New(frames []render.Rendered, durations []time.Duration, columns, rows int, reverse bool) *AnimationState {
	s := &AnimationState{
		Frames:    append([]render.Rendered(nil), frames...),
		Durations: append([]time.Duration(nil), durations...),
		Columns:   columns,
		Rows:      rows,
	}
	if reverse {
		slices.Reverse(s.Frames)
		slices.Reverse(s.Durations)
	}
	return s
}

// Len returns the number of frames.
func (s *AnimationState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// ResizePending reports whether a terminal of columns x rows no longer
// matches this state. A nil state always needs a build.
func (s *AnimationState) ResizePending(columns, rows int) bool {
	return s == nil || s.Columns != columns || s.Rows != rows
}
