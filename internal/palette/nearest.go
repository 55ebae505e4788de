package palette

import "github.com/rook-computer/gifterm/internal/frame"

// Distance is the channel-wise absolute difference sum over R, G and B.
func Distance(c frame.Color, r RGB) int {
	return absDiff(c.R, r.R) + absDiff(c.G, r.G) + absDiff(c.B, r.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Nearest returns the entry of ref closest to c. Ties keep the earliest entry.
// ref must not be empty.
func (ref *Reference) Nearest(c frame.Color) RGB {
	best := ref.Colors[0]
	bestDist := Distance(c, best)
	for _, candidate := range ref.Colors[1:] {
		if d := Distance(c, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Remap returns a copy of t where every entry with alpha above 127 is
// replaced by its nearest reference color. Alpha is kept; near-transparent
// entries are left as they are.
func (ref *Reference) Remap(t frame.ColorTable) frame.ColorTable {
	out := t.Clone()
	if ref == nil || len(ref.Colors) == 0 {
		return out
	}
	for i, c := range out {
		if !c.Opaque() {
			continue
		}
		n := ref.Nearest(c)
		out[i] = frame.Color{R: n.R, G: n.G, B: n.B, A: c.A}
	}
	return out
}
