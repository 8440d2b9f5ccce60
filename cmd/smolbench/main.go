// Command smolbench compares SmolVec against a plain slice on the push and
// pop workloads the package is designed for.
//
// Usage:
//
//	smolbench [-cases push,pop] [-format text|json] [-o file] [-parallel n] [-benchtime 1s] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"text/tabwriter"

	"github.com/simplysabir/smolvec/codec"
)

// Config holds the command line settings.
type Config struct {
	Cases     string
	Format    string
	Output    string
	Parallel  int
	BenchTime string
	Verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("smolbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Cases, "cases", "", "comma-separated case name filters (default: all)")
	fs.StringVar(&cfg.Format, "format", "text", "output and log format: text or json")
	fs.StringVar(&cfg.Output, "o", "", "write results to this file instead of stdout")
	fs.IntVar(&cfg.Parallel, "parallel", 1, "number of cases measured concurrently")
	fs.StringVar(&cfg.BenchTime, "benchtime", "1s", "run time per case (duration or Nx)")
	fs.BoolVar(&cfg.Verbose, "v", false, "log each case")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return cfg, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.Parallel < 1 {
		return cfg, fmt.Errorf("parallel must be at least 1, got %d", cfg.Parallel)
	}
	return cfg, nil
}

// setBenchTime applies d to testing.Benchmark through the test.benchtime
// flag, which testing.Init registers on the default flag set.
func setBenchTime(d string) error {
	testing.Init()
	return flag.Set("test.benchtime", d)
}

func writeResults(w io.Writer, format string, results []Result) error {
	if format == "json" {
		data, err := codec.GoJSON{}.Marshal(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "case\titerations\tns/op\tB/op\tallocs/op\theap buffers/op\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t\n",
			r.Name, r.Iterations, r.NsPerOp, r.BytesPerOp, r.AllocsPerOp, r.HeapBuffers)
	}
	return tw.Flush()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := NewTextLogger(stderr, level)
	if cfg.Format == "json" {
		logger = NewJSONLogger(stderr, level)
	}

	cases, err := SelectCases(DefaultCases(), cfg.Cases)
	if err != nil {
		return err
	}
	if err := setBenchTime(cfg.BenchTime); err != nil {
		return fmt.Errorf("benchtime: %w", err)
	}

	results, err := Run(ctx, cases, cfg.Parallel, logger)
	if err != nil {
		logger.LogRun(ctx, len(cases), 1)
		return err
	}
	logger.LogRun(ctx, len(cases), 0)

	out := stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeResults(out, cfg.Format, results)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "smolbench:", err)
		os.Exit(1)
	}
}
