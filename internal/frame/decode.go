package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"
)

// DefaultDelay replaces a zero GIF frame delay.
const DefaultDelay = 100 * time.Millisecond

// DecodeGIFFile opens path and decodes every frame.
func DecodeGIFFile(path string) ([]RawFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	frames, err := DecodeGIF(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return frames, nil
}

// DecodeGIF decodes an animated GIF into raw frames. Frames are not
// composited onto the logical screen; each keeps its own rectangle.
//
// A frame that shares the global color table with the frame before it gets a
// nil Table, so downstream resolution reuses the previous frame's table.
func DecodeGIF(r io.Reader) ([]RawFrame, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("no frames")
	}
	global, _ := g.Config.ColorModel.(color.Palette)

	frames := make([]RawFrame, 0, len(g.Image))
	prevShared := false
	for i, m := range g.Image {
		shared := sharesTable(m.Palette, global)
		raw := RawFrame{
			Width:  m.Rect.Dx(),
			Height: m.Rect.Dy(),
			Pix:    copyIndices(m),
		}
		if !(shared && prevShared && i > 0) {
			raw.Table = TableFromPalette(m.Palette)
		}
		delay := DefaultDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		raw.Delay = delay
		frames = append(frames, raw)
		prevShared = shared
	}
	return frames, nil
}

func sharesTable(p, global color.Palette) bool {
	if len(p) == 0 || len(global) == 0 || len(p) != len(global) {
		return false
	}
	return &p[0] == &global[0]
}

func copyIndices(m *image.Paletted) []uint8 {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	pix := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		start := y * m.Stride
		pix = append(pix, m.Pix[start:start+w]...)
	}
	return pix
}
