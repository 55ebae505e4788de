package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/gifterm/internal/app"
	"github.com/rook-computer/gifterm/internal/config"
	"github.com/rook-computer/gifterm/internal/render"
	"github.com/rook-computer/gifterm/internal/system"
)

func main() {
	scenario := flag.String("scenario", "gradient", "generated animation: gradient | checker | blink")
	width := flag.Int("width", 48, "frame width in pixels")
	height := flag.Int("height", 24, "frame height in pixels")
	count := flag.Int("frames", 12, "number of frames")
	columns := flag.Int("columns", 0, "pretend the terminal has this many columns (needs -rows)")
	rows := flag.Int("rows", 0, "pretend the terminal has this many rows (needs -columns)")
	headless := flag.Bool("headless", false, "build and schedule frames without writing them anywhere")
	duration := flag.Duration("duration", 0, "stop after this long; 0 plays until interrupted")
	flag.Parse()

	cfg, err := config.Resolve("", flag.Args())
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		logger = app.NewFileLogger(os.Stderr)
	}
	pipeline, err := app.NewPipeline(cfg, logger)
	if err != nil {
		fmt.Println("pipeline error:", err)
		os.Exit(1)
	}

	frames, err := Generate(strings.TrimSpace(*scenario), *width, *height, *count, pipeline.Policy)
	if err != nil {
		fmt.Println("scenario error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		processCtx, cancel = context.WithTimeout(processCtx, *duration)
		defer cancel()
	}

	scheduler := app.New(frames, pipeline, displayFor(*headless), probeFor(*columns, *rows))
	scheduler.Logger = logger
	if !*headless {
		scheduler.Placeholder = app.DefaultPlaceholder
	}
	if err := scheduler.Run(processCtx); err != nil {
		fmt.Println("playback error:", err)
		os.Exit(1)
	}
}

func displayFor(headless bool) render.Display {
	if headless {
		return render.NoopDisplay{}
	}
	return render.NewTerminalDisplay(os.Stdout)
}

func probeFor(columns, rows int) system.SizeProbe {
	if columns > 0 && rows > 0 {
		return system.StaticProbe{Columns: columns, Rows: rows}
	}
	return system.NewTerminalProbe()
}
