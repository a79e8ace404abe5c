package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/zephyrtronium/graphcalc"
)

var (
	app = kingpin.New("graphcalc", "Evaluate and plot expressions the way a graphing calculator does.")

	configFlag = app.Flag("config", "YAML configuration file.").ExistingFile()
	inFlag     = app.Flag("in", "Input file of one expression per line (default stdin if no expressions given).").String()
	minFlag    = app.Flag("min", "Left end of the plotting domain.").Action(mark("min")).Float64()
	maxFlag    = app.Flag("max", "Right end of the plotting domain.").Action(mark("max")).Float64()
	stepFlag   = app.Flag("step", "Spacing of sampled x values.").Action(mark("step")).Float64()
	clampFlag  = app.Flag("clamp", "Bound on the magnitude of plotted y values.").Action(mark("clamp")).Float64()
	formatFlag = app.Flag("format", "Output format.").Action(mark("format")).Enum("text", "json", "yaml")
	levelFlag  = app.Flag("log-level", "Log level.").Action(mark("log-level")).String()
	echoFlag   = app.Flag("echo", "Print parse trees.").Bool()
	plotFlag   = app.Flag("plot", "Plot every expression, even without x.").Bool()
	exprArgs   = app.Arg("expression", "Expressions to calculate.").Strings()
)

// given records the flags that appeared on the command line.
var given = map[string]bool{}

func mark(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		given[name] = true
		return nil
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load config")
	}
	cfg = override(cfg)
	if err := cfg.validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	lvl, _ := cfg.level()
	log = log.Level(lvl)
	log.Debug().Interface("config", cfg).Msg("configured")

	srcs := *exprArgs
	if len(srcs) == 0 || *inFlag != "" {
		lines, err := readLines(*inFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't read input")
		}
		srcs = append(srcs, lines...)
	}

	c := &calculator{cfg: cfg, echo: *echoFlag, plot: *plotFlag, log: log, out: newPrinter(os.Stdout, cfg.Format)}
	failed := 0
	for _, src := range srcs {
		ok, err := c.calculate(src)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't write output")
		}
		if !ok {
			failed++
		}
	}
	if err := c.out.close(); err != nil {
		log.Fatal().Err(err).Msg("couldn't write output")
	}
	log.Debug().Int("expressions", len(srcs)).Int("failed", failed).Msg("done")
	if failed > 0 {
		os.Exit(1)
	}
}

// override applies the flags given on the command line to cfg.
func override(cfg config) config {
	if given["min"] {
		cfg.Domain.Min = *minFlag
	}
	if given["max"] {
		cfg.Domain.Max = *maxFlag
	}
	if given["step"] {
		cfg.Domain.Step = *stepFlag
	}
	if given["clamp"] {
		cfg.Clamp = *clampFlag
	}
	if given["format"] {
		cfg.Format = *formatFlag
	}
	if given["log-level"] {
		cfg.LogLevel = *levelFlag
	}
	return cfg
}

// calculator runs expressions and prints the outcomes.
type calculator struct {
	cfg config
	// echo is whether to print parse trees.
	echo bool
	// plot is whether to sample expressions that don't use x.
	plot bool
	log  zerolog.Logger
	out  *printer
}

// calculate runs one expression and prints its outcome. It reports whether
// the calculation succeeded. The error is from writing output.
func (c *calculator) calculate(src string) (bool, error) {
	log := c.log.With().Str("expr", src).Logger()
	if c.echo {
		if e, err := graphcalc.Parse(src); err == nil {
			if err := c.out.echo(e.String()); err != nil {
				return false, err
			}
		}
	}
	r, err := c.run(src)
	switch {
	case err == graphcalc.ErrEmpty:
		log.Debug().Msg("empty expression")
		return true, nil
	case err != nil:
		log.Warn().Err(err).Msg("calculation failed")
		return false, c.out.failure(src, err)
	}
	log.Debug().Stringer("kind", r.Kind).Int("points", len(r.Points)).Msg("calculated")
	return true, c.out.result(r)
}

func (c *calculator) run(src string) (*graphcalc.Result, error) {
	opt := graphcalc.Clamp(c.cfg.Clamp)
	if !c.plot {
		return graphcalc.Calculate(src, c.cfg.Domain, opt)
	}
	clean := graphcalc.StripAssignment(src)
	if strings.TrimSpace(clean) == "" {
		return nil, graphcalc.ErrEmpty
	}
	e, err := graphcalc.Parse(clean)
	if err != nil {
		return nil, &graphcalc.EvaluationError{Source: clean, Graph: true, Err: err}
	}
	pts := e.SampleDomain(c.cfg.Domain, opt)
	if len(pts) == 0 {
		return nil, &graphcalc.EvaluationError{Source: clean, Graph: true, Err: graphcalc.ErrNotPlottable}
	}
	return &graphcalc.Result{Source: clean, Kind: graphcalc.Graph, Points: pts}, nil
}

// readLines reads the expressions in a file, or stdin if name is empty or -.
func readLines(name string) ([]string, error) {
	var r io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	return scanLines(r)
}

// scanLines returns the non-blank lines of r with surrounding space removed.
func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, errors.Wrap(sc.Err(), "reading input")
}
