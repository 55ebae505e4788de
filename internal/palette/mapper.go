package palette

import (
	"github.com/rook-computer/gifterm/internal/diag"
	"github.com/rook-computer/gifterm/internal/frame"
)

// Mapper reduces and remaps the color tables of a frame sequence. A Mapper
// carries table state between consecutive frames, so use one per build and
// feed it frames in order.
type Mapper struct {
	Quantizer Quantizer
	Reference *Reference
	Policy    diag.Policy

	resolver Resolver
}

func NewMapper(maxColors int, dither bool, ref *Reference, policy diag.Policy) *Mapper {
	if policy == nil {
		policy = diag.Disabled{}
	}
	return &Mapper{
		Quantizer: Quantizer{MaxColors: maxColors, Dither: dither},
		Reference: ref,
		Policy:    policy,
	}
}

// Map resolves, quantizes and remaps one frame. The returned frame always
// has a non-nil table. An error is only returned when the diagnostics policy
// asks to halt.
func (m *Mapper) Map(f frame.RawFrame) (frame.RawFrame, error) {
	requantize := m.Quantizer.MaxColors > 0
	source, res := m.resolver.Resolve(f.Table, requantize)

	switch res {
	case Missing:
		if err := m.Policy.Report(diag.Errorf("palette", "frame has no color table and no previous frame")); err != nil {
			return frame.RawFrame{}, err
		}
		source = frame.ColorTable{}
	case InheritFinal:
		out := f.WithTable(source)
		if err := m.Policy.Report(out.CheckIndices(source)); err != nil {
			return frame.RawFrame{}, err
		}
		m.resolver.Commit(m.resolver.prevSource, source)
		return out, nil
	}

	work := f.WithTable(source)
	if m.Policy.Enabled() {
		if err := m.Policy.Report(work.CheckIndices(source)); err != nil {
			return frame.RawFrame{}, err
		}
	}
	if requantize {
		work = m.Quantizer.Quantize(work)
		if err := m.checkQuantized(work.Table); err != nil {
			return frame.RawFrame{}, err
		}
	}
	final := m.Reference.Remap(work.Table)
	m.resolver.Commit(source, final)
	return work.WithTable(final), nil
}

func (m *Mapper) checkQuantized(t frame.ColorTable) error {
	if !m.Policy.Enabled() {
		return nil
	}
	limit := m.Quantizer.MaxColors
	if limit == 1 && len(t) == 2 && !t[1].Opaque() {
		// colors=1 keeps its visible color next to the transparent slot.
		limit = 2
	}
	if len(t) > limit {
		if err := m.Policy.Report(diag.Errorf("palette", "table has %d colors, limit is %d", len(t), limit)); err != nil {
			return err
		}
	}
	seen := make(map[frame.Color]int, len(t))
	for i, c := range t {
		if j, dup := seen[c]; dup {
			return m.Policy.Report(diag.Errorf("palette", "entries %d and %d are both %v", j, i, c))
		}
		seen[c] = i
	}
	return nil
}
