package palette

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/rook-computer/gifterm/internal/frame"
	xdraw "golang.org/x/image/draw"
)

// Quantizer reduces a frame to at most MaxColors visible table entries and
// rewrites its pixel indices into the new table.
type Quantizer struct {
	MaxColors int
	Dither    bool
}

// Quantize returns a new frame; f is not modified.
//
// Only opaque pixels (alpha >= 128) are median-cut and redrawn, against a
// palette that holds opaque colors only. Pixels that are transparent, or
// whose index is outside the table, are then pointed at one fully
// transparent entry appended to the table. That entry shares the MaxColors
// budget, except with MaxColors 1, where it is added on top so the single
// visible color survives.
func (q Quantizer) Quantize(f frame.RawFrame) frame.RawFrame {
	if q.MaxColors <= 0 || f.Width == 0 || f.Height == 0 {
		return f
	}

	samples := make([]color.NRGBA, 0, len(f.Pix))
	masked := make([]bool, len(f.Pix))
	transparent := false
	for i, idx := range f.Pix {
		if int(idx) >= len(f.Table) || !f.Table[idx].Opaque() {
			masked[i] = true
			transparent = true
			continue
		}
		c := f.Table[idx]
		samples = append(samples, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}

	out := f
	if len(samples) == 0 {
		out.Pix = make([]uint8, len(f.Pix))
		out.Table = frame.ColorTable{{}}
		return out
	}

	budget := q.MaxColors
	if transparent && budget >= 2 {
		budget--
	}
	sample := image.NewNRGBA(image.Rect(0, 0, len(samples), 1))
	for i, c := range samples {
		sample.SetNRGBA(i, 0, c)
	}
	quantizer := quantize.MedianCutQuantizer{}
	opaque := quantizer.Quantize(make(color.Palette, 0, budget), sample)

	// Transparent pixels are drawn as an exact palette color so they feed
	// no error into their dithered neighbours; the mask overwrites them.
	filler := color.NRGBAModel.Convert(opaque[0]).(color.NRGBA)
	src := image.NewNRGBA(f.Bounds())
	for i, idx := range f.Pix {
		c := filler
		if !masked[i] {
			t := f.Table[idx]
			c = color.NRGBA{R: t.R, G: t.G, B: t.B, A: 255}
		}
		src.SetNRGBA(i%f.Width, i/f.Width, c)
	}

	dst := image.NewPaletted(f.Bounds(), opaque)
	if q.Dither {
		xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), src, image.Point{})
	} else {
		xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Src)
	}

	table := frame.TableFromPalette(opaque)
	if transparent {
		blank := uint8(len(table))
		table = append(table, frame.Color{})
		for i, m := range masked {
			if m {
				dst.Pix[i] = blank
			}
		}
	}
	out.Pix = dst.Pix
	out.Table = table
	return out
}
