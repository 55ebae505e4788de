package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rook-computer/gifterm/internal/frame"
)

// DefaultGlyph fills a cell when no custom glyph is configured.
const DefaultGlyph = "  "

// Rendered is one display-ready screen: rows of encoded cells joined by
// line breaks, with no trailing break.
type Rendered string

// Rows splits r back into its text rows.
func (r Rendered) Rows() []string {
	if r == "" {
		return nil
	}
	return strings.Split(string(r), "\n")
}

// Rasterizer turns mapped frames into Rendered screens.
type Rasterizer struct {
	glyph string
	blank string
}

// NewRasterizer builds a rasterizer for an optional custom glyph. A single
// character is doubled, two characters are used as given and an empty glyph
// falls back to DefaultGlyph.
func NewRasterizer(custom string) Rasterizer {
	glyph := custom
	switch utf8.RuneCountInString(custom) {
	case 0:
		glyph = DefaultGlyph
	case 1:
		glyph = custom + custom
	}
	return Rasterizer{glyph: glyph, blank: strings.Repeat(" ", runewidth.StringWidth(glyph))}
}

// CellWidth is the number of terminal columns one pixel occupies.
func (r Rasterizer) CellWidth() int { return len(r.blank) }

// Rasterize encodes f row by row. Pixels whose color has alpha below 128, or
// whose index is outside the table, become blank cells.
func (r Rasterizer) Rasterize(f frame.RawFrame) Rendered {
	buf := make([]byte, 0, f.Width*f.Height*(len(r.glyph)+40))
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			idx := int(f.At(col, row))
			if idx >= len(f.Table) || f.Table[idx].A < 128 {
				buf = append(buf, r.blank...)
				continue
			}
			c := f.Table[idx]
			buf = appendCell(buf, r.glyph, c.R, c.G, c.B)
		}
		buf = append(buf, '\n')
	}
	return Rendered(strings.TrimSuffix(string(buf), "\n"))
}
