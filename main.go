package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/gifterm/internal/app"
	"github.com/rook-computer/gifterm/internal/assets"
	"github.com/rook-computer/gifterm/internal/config"
	"github.com/rook-computer/gifterm/internal/frame"
	"github.com/rook-computer/gifterm/internal/render"
	"github.com/rook-computer/gifterm/internal/system"
	"github.com/spf13/cobra"
)

const debugLogPath = "./gifterm-debug.log"

var (
	configPath string
	stdioLog   string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gifterm <path|help> [key=value ...]",
		Short:         "Play an animated GIF as colored text in the terminal",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), assets.HelpText)
	})

	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with default settings; also configurable via "+config.EnvConfigPath)
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable integrity diagnostics and debug logging to "+debugLogPath)
	rootCmd.Flags().StringVar(&stdioLog, "stdio-log", "", "redirect stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)

	if err := rootCmd.Execute(); err != nil {
		var usage *config.UsageError
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, "Run 'gifterm help' for usage.")
		}
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &config.UsageError{Msg: "missing path argument"}
	}
	if len(args) == 1 && args[0] == "help" {
		fmt.Fprint(cmd.OutOrStdout(), assets.HelpText)
		return nil
	}

	// Best-effort: keep crash output out of the frames on screen.
	logPath := stdioLog
	if logPath == "" {
		logPath = os.Getenv(config.EnvStdioLog)
	}
	if logPath != "" {
		if err := redirectStderr(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stderr log redirect error:", err)
		}
	}

	cfg, err := config.Resolve(configPath, args[1:])
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled, config=%+v", cfg)
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	frames, err := frame.DecodeGIFFile(args[0])
	if err != nil {
		return err
	}
	logger.Infof("main", "decoded %d frames from %s", len(frames), args[0])

	return play(frames, cfg, logger, os.Stdout)
}

// play runs the scheduler on out until SIGINT/SIGTERM.
func play(frames []frame.RawFrame, cfg config.PlaybackConfig, logger app.Logger, out *os.File) error {
	pipeline, err := app.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := render.NewTerminalDisplay(out)
	display.Logger = logger

	scheduler := app.New(frames, pipeline, display, system.TerminalProbe{File: out})
	scheduler.Logger = logger
	if display.Interactive {
		scheduler.Placeholder = app.DefaultPlaceholder
	}

	if err := scheduler.Run(ctx); err != nil {
		return err
	}
	if display.Interactive {
		_, _ = io.WriteString(out, "\n")
	}
	logger.Infof("main", "stopped")
	return nil
}
