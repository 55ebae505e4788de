package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a reference palette entry. Reference palettes carry no alpha.
type RGB struct {
	R, G, B uint8
}

// Reference is a fixed, named, ordered color set. Order matters: nearest
// color ties resolve to the earlier entry.
type Reference struct {
	Name   string
	Colors []RGB
}

// NoneName disables reference remapping.
const NoneName = "none"

var catalog = map[string]Reference{}

func register(name string, colors []RGB) {
	catalog[name] = Reference{Name: name, Colors: colors}
}

func fromHex(hexes ...string) []RGB {
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("palette: bad hex literal %q: %v", h, err))
		}
		r, g, b := c.RGB255()
		out = append(out, RGB{R: r, G: g, B: b})
	}
	return out
}

func fromTerminal(n int) []RGB {
	out := make([]RGB, 0, n)
	for i := 0; i < n; i++ {
		r, g, b := tcell.PaletteColor(i).RGB()
		out = append(out, RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
	}
	return out
}

func fromNames(names ...string) []RGB {
	out := make([]RGB, 0, len(names))
	for _, n := range names {
		r, g, b := tcell.GetColor(n).RGB()
		if r < 0 {
			panic(fmt.Sprintf("palette: unknown color name %q", n))
		}
		out = append(out, RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
	}
	return out
}

func grayRamp(steps int) []RGB {
	out := make([]RGB, steps)
	for i := range out {
		v := uint8(i * 255 / (steps - 1))
		out[i] = RGB{R: v, G: v, B: v}
	}
	return out
}

func init() {
	register("monochrome", fromHex("#000000", "#ffffff"))
	register("gray4", grayRamp(4))
	register("gray8", grayRamp(8))
	register("grayscale", grayRamp(16))
	register("gameboy", fromHex("#0f380f", "#306230", "#8bac0f", "#9bbc0f"))
	register("cga", fromHex("#000000", "#55ffff", "#ff55ff", "#ffffff"))
	register("sepia", fromHex("#2b1d0e", "#4a3520", "#705236", "#9c7a54", "#c4a77d", "#ecdcb9"))
	register("pico8", fromHex(
		"#000000", "#1d2b53", "#7e2553", "#008751", "#ab5236", "#5f574f", "#c2c3c7", "#fff1e8",
		"#ff004d", "#ffa300", "#ffec27", "#00e436", "#29adff", "#83769c", "#ff77a8", "#ffccaa",
	))
	register("c64", fromHex(
		"#000000", "#ffffff", "#880000", "#aaffee", "#cc44cc", "#00cc55", "#0000aa", "#eeee77",
		"#dd8855", "#664400", "#ff7777", "#333333", "#777777", "#aaff66", "#0088ff", "#bbbbbb",
	))
	register("ocean", fromHex("#011627", "#023e7d", "#0466c8", "#48cae4", "#90e0ef", "#caf0f8"))
	register("forest", fromNames("darkgreen", "forestgreen", "olivedrab", "darkkhaki", "saddlebrown", "sienna", "tan"))
	register("web16", fromNames(
		"black", "silver", "gray", "white", "maroon", "red", "purple", "fuchsia",
		"green", "lime", "olive", "yellow", "navy", "blue", "teal", "aqua",
	))
	register("ansi16", fromTerminal(16))
	register("xterm256", fromTerminal(256))
}

// Lookup finds a reference palette by case-insensitive name. "none" yields
// (nil, nil). Unknown names are an error.
func Lookup(name string) (*Reference, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == NoneName {
		return nil, nil
	}
	ref, ok := catalog[key]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return &ref, nil
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
