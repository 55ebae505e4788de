package palette

import "github.com/rook-computer/gifterm/internal/frame"

// Resolution says where a frame's table came from.
type Resolution int

const (
	// Own: the frame carries its own table.
	Own Resolution = iota
	// InheritFinal: no table; reuse the previous frame's final table as is.
	InheritFinal
	// InheritSource: no table; re-run mapping on the previous frame's source
	// table because quantization rewrote the previous index space.
	InheritSource
	// Missing: no table and nothing to inherit from.
	Missing
)

// Resolver tracks the previous frame's tables across one build. The zero
// value is ready to use; a new build starts with a new Resolver.
type Resolver struct {
	seen       bool
	prevSource frame.ColorTable
	prevFinal  frame.ColorTable
}

// Resolve picks the table for a frame whose own table is own. requantize is
// true when the mapper rewrites pixel indices.
func (r *Resolver) Resolve(own frame.ColorTable, requantize bool) (frame.ColorTable, Resolution) {
	switch {
	case own != nil:
		return own, Own
	case !r.seen:
		return nil, Missing
	case requantize:
		return r.prevSource, InheritSource
	default:
		return r.prevFinal, InheritFinal
	}
}

// Commit records the tables the current frame ended up with.
func (r *Resolver) Commit(source, final frame.ColorTable) {
	r.seen = true
	r.prevSource = source
	r.prevFinal = final
}
