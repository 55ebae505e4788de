package main

import (
	"fmt"
	"time"

	"github.com/rook-computer/gifterm/internal/diag"
	"github.com/rook-computer/gifterm/internal/frame"
)

const simDelay = 80 * time.Millisecond

// Generate builds a synthetic animation. Scenario tables are written as flat
// RGBA bytes and go through the same integrity policy as the build. Every
// scenario keeps index 0 transparent so the blank-cell path is exercised too.
func Generate(scenario string, width, height, count int, policy diag.Policy) ([]frame.RawFrame, error) {
	if width <= 0 || height <= 0 || count <= 0 {
		return nil, fmt.Errorf("width, height and frames must be positive")
	}
	if policy == nil {
		policy = diag.Disabled{}
	}
	switch scenario {
	case "gradient", "":
		return gradient(width, height, count, policy)
	case "checker":
		return checker(width, height, count, policy)
	case "blink":
		return blink(width, height, count, policy)
	default:
		return nil, fmt.Errorf("unknown scenario %q", scenario)
	}
}

// gradient sweeps a hue ramp sideways; only the first frame carries a table.
func gradient(width, height, count int, policy diag.Policy) ([]frame.RawFrame, error) {
	flat := []uint8{0, 0, 0, 0}
	for i := 0; i < 32; i++ {
		v := uint8(i * 255 / 31)
		flat = append(flat, v, 255-v, 128, 255)
	}
	table, err := frame.TableFromBytes(flat, 4, policy)
	if err != nil {
		return nil, fmt.Errorf("gradient table: %w", err)
	}
	frames := make([]frame.RawFrame, count)
	for n := range frames {
		pix := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if x == 0 && y == 0 {
					continue
				}
				pix[x+y*width] = uint8(1 + (x+n)%32)
			}
		}
		frames[n] = frame.RawFrame{Width: width, Height: height, Pix: pix, Delay: simDelay}
	}
	frames[0].Table = table
	return frames, nil
}

// checker alternates two colors in 4x4 squares.
func checker(width, height, count int, policy diag.Policy) ([]frame.RawFrame, error) {
	table, err := frame.TableFromBytes([]uint8{
		0, 0, 0, 0,
		255, 255, 255, 255,
		30, 30, 30, 255,
	}, 4, policy)
	if err != nil {
		return nil, fmt.Errorf("checker table: %w", err)
	}
	frames := make([]frame.RawFrame, count)
	for n := range frames {
		pix := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pix[x+y*width] = uint8(1 + (x/4+y/4+n)%2)
			}
		}
		frames[n] = frame.RawFrame{Width: width, Height: height, Pix: pix, Table: table.Clone(), Delay: simDelay}
	}
	return frames, nil
}

// blink shows a filled frame followed by a fully transparent one.
func blink(width, height, count int, policy diag.Policy) ([]frame.RawFrame, error) {
	table, err := frame.TableFromBytes([]uint8{0, 0, 0, 0, 255, 140, 0, 255}, 4, policy)
	if err != nil {
		return nil, fmt.Errorf("blink table: %w", err)
	}
	frames := make([]frame.RawFrame, count)
	for n := range frames {
		pix := make([]uint8, width*height)
		if n%2 == 0 {
			for i := range pix {
				pix[i] = 1
			}
		}
		frames[n] = frame.RawFrame{Width: width, Height: height, Pix: pix, Table: table.Clone(), Delay: 4 * simDelay}
	}
	return frames, nil
}
