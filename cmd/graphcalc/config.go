package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/graphcalc"
)

// config is the calculator's settings as read from a YAML file. Command-line
// flags override individual fields.
type config struct {
	Domain   graphcalc.Domain `yaml:"domain"`
	Clamp    float64          `yaml:"clamp"`
	Format   string           `yaml:"format"`
	LogLevel string           `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Domain:   graphcalc.DefaultDomain,
		Clamp:    graphcalc.ClampLimit,
		Format:   "text",
		LogLevel: "info",
	}
}

// loadConfig reads the configuration file at path over the defaults. An empty
// path gives the defaults. Fields the file does not mention keep their
// defaults, and fields the calculator does not know are an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	return cfg, nil
}

// validate checks that the configuration describes a usable calculator.
func (cfg config) validate() error {
	d := cfg.Domain
	if d.Len() == 0 {
		return errors.Errorf("invalid domain [%g, %g] with step %g", d.Min, d.Max, d.Step)
	}
	if d.Len() > graphcalc.DefaultMaxSamples {
		return errors.Errorf("domain [%g, %g] with step %g has too many points", d.Min, d.Max, d.Step)
	}
	if !(cfg.Clamp > 0) {
		return errors.Errorf("clamp must be positive, not %g", cfg.Clamp)
	}
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return errors.Errorf("unknown output format %q", cfg.Format)
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	return nil
}

// level parses the log level.
func (cfg config) level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(err, "invalid log level")
	}
	return l, nil
}
