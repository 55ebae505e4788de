package render

import "strconv"

// Truecolor SGR fragments for the cell encoder.
const (
	csiFgRGB = "\x1b[38;2;" // followed by R;G;Bm
	csiBgRGB = "\x1b[48;2;" // followed by R;G;Bm
	csiReset = "\x1b[0m"
)

// appendCell appends glyph with both foreground and background set to r,g,b
// and resets attributes afterwards.
func appendCell(buf []byte, glyph string, r, g, b uint8) []byte {
	buf = appendRGB(buf, csiFgRGB, r, g, b)
	buf = appendRGB(buf, csiBgRGB, r, g, b)
	buf = append(buf, glyph...)
	return append(buf, csiReset...)
}

func appendRGB(buf []byte, prefix string, r, g, b uint8) []byte {
	buf = append(buf, prefix...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}
