package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// FitGrid returns the size rect is scaled to so that it fits a grid of
// columns x rows cells, anchored at the origin.
//
// Two independent passes run in order. When the width overflows, both axes
// are scaled by columns/width. When the (possibly already scaled) height
// still overflows, only the height is scaled again by rows/height. A rect
// that needs both passes therefore ends up squashed vertically by
// scaleW*scaleH while its width keeps scaleW. Sizes truncate toward zero
// and never drop below one cell.
func FitGrid(rect image.Rectangle, columns, rows int) image.Rectangle {
	rect = Normalize(rect)
	width, height := rect.Dx(), rect.Dy()

	if width > columns {
		scaleW := float64(columns) / float64(width)
		width = atLeastOne(int(float64(width) * scaleW))
		height = atLeastOne(int(float64(height) * scaleW))
	}
	if height > rows {
		scaleH := float64(rows) / float64(height)
		height = atLeastOne(int(float64(height) * scaleH))
	}
	return image.Rect(0, 0, width, height)
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
