package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func encodeGIF(t *testing.T, g *gif.GIF) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func paletted(p color.Palette, w, h int, fill func(x, y int) uint8) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, w, h), p)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetColorIndex(x, y, fill(x, y))
		}
	}
	return m
}

func TestDecodeGIFSharedGlobalTable(t *testing.T) {
	global := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
		color.RGBA{R: 255, G: 255, A: 255},
	}
	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(global, 3, 2, func(x, y int) uint8 { return uint8(x + y) }),
			paletted(global, 3, 2, func(x, y int) uint8 { return 3 }),
		},
		Delay:  []int{5, 0},
		Config: image.Config{ColorModel: global, Width: 3, Height: 2},
	}
	frames, err := DecodeGIF(bytes.NewReader(encodeGIF(t, g)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames", len(frames))
	}
	first := frames[0]
	if first.Width != 3 || first.Height != 2 {
		t.Fatalf("first frame is %dx%d", first.Width, first.Height)
	}
	if want := []uint8{0, 1, 2, 1, 2, 3}; !bytes.Equal(first.Pix, want) {
		t.Errorf("pixels = %v, want %v", first.Pix, want)
	}
	if first.Table == nil || first.Table[0] != (Color{R: 255, A: 255}) {
		t.Errorf("first table = %v", first.Table)
	}
	if frames[1].Table != nil {
		t.Errorf("second frame should inherit the shared table, got %v", frames[1].Table)
	}
	if first.Delay != 50*time.Millisecond || frames[1].Delay != DefaultDelay {
		t.Errorf("delays = %v, %v", first.Delay, frames[1].Delay)
	}
}

func TestDecodeGIFLocalTables(t *testing.T) {
	p1 := color.Palette{color.RGBA{R: 255, A: 255}, color.RGBA{A: 255}}
	p2 := color.Palette{color.RGBA{B: 255, A: 255}, color.RGBA{G: 9, A: 255}}
	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(p1, 2, 2, func(x, y int) uint8 { return 0 }),
			paletted(p2, 2, 2, func(x, y int) uint8 { return 1 }),
		},
		Delay: []int{10, 10},
	}
	frames, err := DecodeGIFFile(writeTemp(t, encodeGIF(t, g)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if frames[1].Table == nil || frames[1].Table[0] != (Color{B: 255, A: 255}) {
		t.Errorf("second table = %v", frames[1].Table)
	}
}

func TestDecodeGIFFileMissing(t *testing.T) {
	if _, err := DecodeGIFFile(filepath.Join(t.TempDir(), "nope.gif")); err == nil {
		t.Fatal("expected an error")
	}
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anim.gif")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
