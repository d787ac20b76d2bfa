// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command disty summarizes the distribution of a set of numbers.
//
// disty reads newline-separated numbers from a file or from standard
// input and prints their count, sum, mean, geometric mean, standard
// deviation, variance, and percentiles, followed by a plot of a
// kernel density estimate of their distribution.
//
// Usage:
//
//	disty [flags] [file]
//
// Each line holds a decimal number or a hexadecimal integer with a
// "0x" prefix. Lines that are blank or do not parse are skipped. A
// file argument is memory-mapped and parsed in parallel.
//
// With -u, input values are in the given unit (ns, us, ms, s, B, KB,
// MB, GB, TB, PB, KiB, MiB, GiB, TiB, PiB) and are displayed as
// durations or sizes. -f overrides the display format (float, hex,
// time, bytes).
//
// With -bench metric, the input is instead Go benchmark output, and
// the sample is the value of metric (such as ns/op) from every
// result line whose name matches -run. -list prints the benchmarks
// and metrics in the input.
//
// Default flags may be given in the DISTY_FLAGS environment variable,
// which is split using shell quoting rules. Flags on the command line
// override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"runtime/pprof"

	"github.com/disty/disty/bench"
	"github.com/disty/disty/kde"
	"github.com/disty/disty/parse"
	"github.com/disty/disty/summary"
	"github.com/disty/disty/units"
	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

// config is the command configuration assembled from flags.
type config struct {
	unit      units.Unit
	format    units.Format
	formatSet bool

	noPlot bool
	cdf    bool
	width  int
	svg    string

	metric string
	runRe  *regexp.Regexp
	list   bool

	cpuProfile string
}

// errNoInput is returned by readSamples when the input holds no
// samples.
var errNoInput = errors.New("no input")

func (c *config) register(fs *flag.FlagSet) {
	fs.Var(&c.unit, "u", "input values are in `unit`")
	fs.Var(&c.format, "f", "display values in `format` (float, hex, time, bytes)")
	fs.BoolVar(&c.noPlot, "no-plot", false, "do not plot the density estimate")
	fs.BoolVar(&c.cdf, "cdf", false, "plot the cumulative distribution instead of the density")
	fs.IntVar(&c.width, "width", 0, "plot `columns` wide (default: terminal width or 80)")
	fs.StringVar(&c.svg, "svg", "", "also write an SVG plot to `file`")
	fs.StringVar(&c.metric, "bench", "", "read Go benchmark output and summarize `metric` (e.g., ns/op)")
	fs.Var(FlagRegexp{&c.runRe}, "run", "only use benchmarks whose names match `regexp`")
	fs.BoolVar(&c.list, "list", false, "list the benchmarks and metrics in the input and exit")
	fs.StringVar(&c.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
}

// parseFlags parses the default flags in env, then args, into fs.
// Flags in args override those in env.
func parseFlags(fs *flag.FlagSet, env string, args []string) error {
	if env != "" {
		words, err := shellquote.Split(env)
		if err != nil {
			return fmt.Errorf("DISTY_FLAGS: %w", err)
		}
		if err := fs.Parse(words); err != nil {
			return fmt.Errorf("DISTY_FLAGS: %w", err)
		}
		if fs.NArg() > 0 {
			return fmt.Errorf("DISTY_FLAGS: unexpected argument %q", fs.Arg(0))
		}
	}
	return fs.Parse(args)
}

// resolve fills in settings that depend on other flags.
func (c *config) resolve(fs *flag.FlagSet) {
	unitSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			c.formatSet = true
		case "u":
			unitSet = true
		}
	})
	if c.metric != "" && !unitSet {
		c.unit = bench.MetricUnit(c.metric)
	}
	if !c.formatSet {
		c.format = c.unit.DefaultFormat()
	}
}

func main() {
	log.SetPrefix("disty: ")
	log.SetFlags(0)

	var cfg config
	cfg.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	if err := parseFlags(flag.CommandLine, os.Getenv("DISTY_FLAGS"), os.Args[1:]); err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.resolve(flag.CommandLine)

	if cfg.cpuProfile != "" {
		stop, err := startCPUProfile(cfg.cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer stop()
	}

	if cfg.list {
		bs, err := readBenchmarks(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		if err := bench.Fprint(os.Stdout, bs); err != nil {
			log.Fatal(err)
		}
		return
	}

	xs, err := readSamples(&cfg, flag.Arg(0))
	if errors.Is(err, errNoInput) {
		fmt.Fprintln(os.Stderr, "no input")
		return
	} else if err != nil {
		log.Fatal(err)
	}

	s := summary.New(xs)
	est := kde.New(s)
	if cfg.width <= 0 {
		cfg.width = terminalWidth()
	}
	if err := report(os.Stdout, &cfg, s, est); err != nil {
		log.Fatal(err)
	}

	if cfg.svg != "" {
		if est.Bandwidth() == 0 {
			log.Printf("not writing %s: all samples are equal", cfg.svg)
			return
		}
		f, err := os.Create(cfg.svg)
		if err != nil {
			log.Fatal(err)
		}
		err = writeSVG(f, est, cfg.format, cfg.cdf, flag.Arg(0))
		if err1 := f.Close(); err == nil {
			err = err1
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

// startCPUProfile writes a CPU profile to path until stop is called.
func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Print(err)
		}
	}, nil
}

// readSamples reads the samples from path, or standard input if path
// is "", and scales them to base units.
func readSamples(cfg *config, path string) ([]float64, error) {
	var xs []float64
	if cfg.metric != "" {
		bs, err := readBenchmarks(path)
		if err != nil {
			return nil, err
		}
		xs = bench.Values(bs, cfg.metric, cfg.runRe)
		if scale := cfg.unit.Scale(); scale != 1 {
			for i := range xs {
				xs[i] *= scale
			}
		}
	} else {
		p := parse.Parser{Scale: cfg.unit.Scale()}
		var err error
		if path == "" {
			xs, err = p.Reader(os.Stdin)
		} else {
			xs, err = p.File(path)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(xs) == 0 {
		return nil, errNoInput
	}
	return xs, nil
}

func readBenchmarks(path string) ([]*bench.Benchmark, error) {
	if path == "" {
		return bench.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bs, err := bench.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return bs, nil
}

// report writes the summary table and the density plot to w.
func report(w io.Writer, cfg *config, s *summary.Summary, est *kde.Estimator) error {
	if err := fprintTable(w, s, cfg.format); err != nil {
		return err
	}
	if cfg.noPlot {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if est.Bandwidth() == 0 {
		_, err := fmt.Fprintf(w, "all %s samples are %s; nothing to plot\n", units.Count(s.N()), cfg.format.Format(s.Min()))
		return err
	}
	low, high := est.Bounds()
	p := newTextPlot(cfg.width, low, high, cfg.format)
	var ys []float64
	if cfg.cdf {
		ys = est.CDFs(p.xs())
	} else {
		ys = est.PDFs(p.xs())
	}
	return p.Fprint(w, ys)
}

// terminalWidth returns the width of the terminal on standard output,
// or 80 if standard output is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// FlagRegexp is a flag.Value that compiles its argument as a regular
// expression.
type FlagRegexp struct {
	x **regexp.Regexp
}

func (f FlagRegexp) String() string {
	if f.x == nil || *f.x == nil {
		return ""
	}
	return (*f.x).String()
}

func (f FlagRegexp) Set(x string) error {
	re, err := regexp.Compile(x)
	if err != nil {
		return err
	}
	*f.x = re
	return nil
}
