package render

import (
	"image"

	"github.com/rook-computer/gifterm/internal/frame"
	"github.com/rook-computer/gifterm/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Fit rescales f so it fits columns x rows pixel cells, using the two-pass
// rule of layout.FitGrid. A frame that already fits is returned unchanged.
// The input frame is never modified.
func Fit(f frame.RawFrame, columns, rows int) frame.RawFrame {
	target := layout.FitGrid(f.Bounds(), columns, rows)
	if target.Dx() == f.Width && target.Dy() == f.Height {
		return f
	}
	out := f
	out.Width = target.Dx()
	out.Height = target.Dy()
	out.Pix = scaleIndices(f, target)
	return out
}

// scaleIndices nearest-neighbor samples the palette index plane. Indices ride
// through the scaler as gray levels so they come out exactly as they went in.
func scaleIndices(f frame.RawFrame, target image.Rectangle) []uint8 {
	src := &image.Gray{Pix: f.Pix, Stride: f.Width, Rect: f.Bounds()}
	dst := image.NewGray(target)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst.Pix
}
