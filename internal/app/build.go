package app

import (
	"fmt"
	"time"

	"github.com/rook-computer/gifterm/internal/config"
	"github.com/rook-computer/gifterm/internal/diag"
	"github.com/rook-computer/gifterm/internal/frame"
	"github.com/rook-computer/gifterm/internal/palette"
	"github.com/rook-computer/gifterm/internal/render"
	"github.com/rook-computer/gifterm/internal/state"
)

// Pipeline turns raw frames into an AnimationState for one terminal size:
// fit, then map colors, then rasterize, for every frame in order.
type Pipeline struct {
	Config    config.PlaybackConfig
	Reference *palette.Reference
	Policy    diag.Policy
}

// NewPipeline resolves the configured reference palette and diagnostics.
func NewPipeline(cfg config.PlaybackConfig, l Logger) (Pipeline, error) {
	ref, err := cfg.Reference()
	if err != nil {
		return Pipeline{}, err
	}
	return Pipeline{Config: cfg, Reference: ref, Policy: diag.New(cfg.Debug, l)}, nil
}

// Build runs the whole pipeline against a termColumns x termRows terminal.
// Each pixel takes CellWidth terminal columns, so the frame fits
// termColumns/CellWidth pixel columns.
func (p Pipeline) Build(frames []frame.RawFrame, termColumns, termRows int) (*state.AnimationState, error) {
	policy := p.Policy
	if policy == nil {
		policy = diag.Disabled{}
	}
	raster := render.NewRasterizer(p.Config.Glyph)
	columns := termColumns / max(raster.CellWidth(), 1)
	mapper := palette.NewMapper(p.Config.Colors, p.Config.Dither, p.Reference, policy)

	rendered := make([]render.Rendered, 0, len(frames))
	durations := make([]time.Duration, 0, len(frames))
	for i, raw := range frames {
		fitted := render.Fit(raw, columns, termRows)
		mapped, err := mapper.Map(fitted)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		rendered = append(rendered, raster.Rasterize(mapped))
		durations = append(durations, p.Duration(raw.Delay))
	}
	return state.New(rendered, durations, termColumns, termRows, p.Config.Reverse), nil
}

// Duration scales a source frame delay by 1/speed.
func (p Pipeline) Duration(source time.Duration) time.Duration {
	speed := p.Config.Speed
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(source) / speed)
}
