package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/hexblend-mcp/internal/config"
	"github.com/ironsheep/hexblend-mcp/internal/hexcolor"
	"github.com/ironsheep/hexblend-mcp/internal/log"
	"github.com/ironsheep/hexblend-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "hexblend-mcp %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printUsage(stdout)
			return 0
		case "average":
			return runAverage(args[1:], stdout, stderr)
		default:
			fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
			printUsage(stderr)
			return 2
		}
	}

	cfg, warnings := config.Load()
	log.Configure(log.Config{Level: cfg.LogLevel, Output: stderr, Version: Version})
	logger := log.WithComponent("main")
	for _, w := range warnings {
		logger.Warn().Str("key", w.Key).Str("value", w.Value).Str("using", w.Used).Msg("ignoring invalid setting")
	}

	logger.Debug().
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Int("swatch_cell", cfg.SwatchCell).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, Version)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("server error")
		return 1
	}
	return 0
}

// runAverage implements "hexblend-mcp average <color1> <color2>".
func runAverage(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: hexblend-mcp average <color1> <color2>")
		return 2
	}
	avg, err := hexcolor.Average(args[0], args[1])
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, avg)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hexblend-mcp - MCP server for blending hex colors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: hexblend-mcp [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  average <color1> <color2>    Print the channel average of two RRGGBB colors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables (also read from .env):")
	fmt.Fprintln(w, "  HEXBLEND_LOG_LEVEL=debug     Log level (default info)")
	fmt.Fprintln(w, "  HEXBLEND_SWATCH_CELL=32      Default color_swatch cell size in pixels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no command the server communicates via MCP protocol over stdin/stdout.")
}
