package frame

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/rook-computer/gifterm/internal/diag"
)

// Color is a straight (non-premultiplied) RGBA color, 0-255 per channel.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Opaque reports whether the color counts as visible for remapping (alpha > 127).
func (c Color) Opaque() bool { return c.A > 127 }

// ColorTable is an ordered color list; a pixel's index is its color identity.
type ColorTable []Color

// Clone returns an independent copy of the table. A nil table stays nil.
func (t ColorTable) Clone() ColorTable {
	if t == nil {
		return nil
	}
	out := make(ColorTable, len(t))
	copy(out, t)
	return out
}

// Palette converts the table into a color.Palette of color.NRGBA values.
func (t ColorTable) Palette() color.Palette {
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return p
}

// TableFromPalette converts any color.Palette into a ColorTable.
func TableFromPalette(p color.Palette) ColorTable {
	t := make(ColorTable, len(p))
	for i, c := range p {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		t[i] = Color{R: n.R, G: n.G, B: n.B, A: n.A}
	}
	return t
}

// TableFromBytes builds a table from a flat channel list. channels must be 3
// (alpha defaults to 255) or 4. Trailing bytes that do not form a whole color
// are an integrity error; they are dropped when diagnostics are disabled.
func TableFromBytes(flat []uint8, channels int, policy diag.Policy) (ColorTable, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if rem := len(flat) % channels; rem != 0 {
		if err := policy.Report(diag.Errorf("table", "length %d is not a multiple of %d channels", len(flat), channels)); err != nil {
			return nil, err
		}
		flat = flat[:len(flat)-rem]
	}
	t := make(ColorTable, 0, len(flat)/channels)
	for i := 0; i < len(flat); i += channels {
		c := Color{R: flat[i], G: flat[i+1], B: flat[i+2], A: 255}
		if channels == 4 {
			c.A = flat[i+3]
		}
		t = append(t, c)
	}
	return t, nil
}

// RawFrame is one decoded animation frame. Table may be nil when the frame
// has no palette of its own; see palette.Resolver.
type RawFrame struct {
	Width  int
	Height int
	Pix    []uint8
	Table  ColorTable
	Delay  time.Duration
}

// At returns the palette index at column x, row y.
func (f RawFrame) At(x, y int) uint8 { return f.Pix[x+y*f.Width] }

// Bounds returns the frame's pixel rectangle anchored at the origin.
func (f RawFrame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

// Image exposes the frame as an image.Paletted sharing Pix with f. The table
// must be non-nil.
func (f RawFrame) Image() *image.Paletted {
	return &image.Paletted{Pix: f.Pix, Stride: f.Width, Rect: f.Bounds(), Palette: f.Table.Palette()}
}

// WithTable returns a copy of f carrying table t. Pixel data is shared.
func (f RawFrame) WithTable(t ColorTable) RawFrame {
	f.Table = t
	return f
}

// CheckIndices reports the first pixel index that falls outside table.
func (f RawFrame) CheckIndices(table ColorTable) *diag.IntegrityError {
	for i, idx := range f.Pix {
		if int(idx) >= len(table) {
			return diag.Errorf("frame", "pixel %d uses index %d, table has %d entries", i, idx, len(table))
		}
	}
	return nil
}
