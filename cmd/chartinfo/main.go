// Command chartinfo prints a summary of Friday Night Funkin' chart files.
//
// Usage:
//
//	chartinfo [flags] chart.json [metadata.json] [+ file.json [file.json]]...
//
// Files separated by "+" are processed as successive drops against the same
// session, so a chart can be followed by its events or metadata file:
//
//	chartinfo bopeebo.json + events.json
//	chartinfo -multiplier 1000 bopeebo-chart.json bopeebo-metadata.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meguminbot/chartinfo"
	"github.com/meguminbot/chartinfo/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chartinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "chartinfo.ini", "settings file")
		multiplier = fs.String("multiplier", "", "score per note, overriding the engine default")
		wiki       = fs.Bool("wiki", false, "print only the wiki template")
		extended   = fs.Bool("extended", false, "count eight player lanes")
		verbose    = fs.Bool("v", false, "log classification details")
		version    = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: chartinfo [flags] chart.json [metadata.json] [+ file.json [file.json]]...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, chartinfo.GetVersionInfo())
		return 0
	}

	if *multiplier != "" {
		if _, err := chartinfo.ParseMultiplier(*multiplier); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}

	drops := splitDrops(fs.Args())
	if len(drops) == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *extended {
		cfg.Extended = true
	}
	if *wiki {
		cfg.Text, cfg.Wiki = false, true
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	w := chartinfo.NewWorkspace(sessionOptions(cfg, logger)...)
	ctx := context.Background()

	failed := false
	for _, paths := range drops {
		res, err := w.DropFiles(ctx, paths...)
		if err == nil && *multiplier != "" {
			res, err = w.SetMultiplier(*multiplier)
		}
		if err != nil {
			// Keep going: a rejected drop leaves the session as it was.
			fmt.Fprintf(stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		printResult(stdout, cfg, res)
	}

	if failed {
		return 1
	}
	return 0
}

// splitDrops groups arguments on "+" separators.
func splitDrops(args []string) [][]string {
	var drops [][]string
	var cur []string
	for _, a := range args {
		if a == "+" {
			if len(cur) > 0 {
				drops = append(drops, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, a)
	}
	if len(cur) > 0 {
		drops = append(drops, cur)
	}
	return drops
}

func sessionOptions(cfg config.Config, logger *zap.Logger) []chartinfo.Option {
	opts := []chartinfo.Option{chartinfo.WithLogger(logger)}
	if cfg.Extended {
		opts = append(opts, chartinfo.WithExtendedLanes())
	}
	for engine, m := range cfg.Multipliers {
		opts = append(opts, chartinfo.WithDefaultMultiplier(engine, m))
	}
	return opts
}

func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(stderr), lvl)), nil
}

func printResult(w io.Writer, cfg config.Config, res *chartinfo.Result) {
	if res.Notice != "" {
		fmt.Fprintln(w, res.Notice)
	}
	if !cfg.Text {
		// The text output carries its own warnings block.
		for _, warn := range res.Summary.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warn)
		}
	}
	if cfg.Text {
		fmt.Fprint(w, res.Output.Text)
	}
	if cfg.Wiki {
		if cfg.Text {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, res.Output.Wiki)
	}
}
