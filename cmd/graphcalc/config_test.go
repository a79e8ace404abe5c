package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "graphcalc.yaml")
	if err := os.WriteFile(name, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name string
		text string
		want config
	}{
		{"empty", "", defaultConfig()},
		{"full", "domain: {min: -1, max: 1, step: 0.5}\nclamp: 10\nformat: json\nlog_level: debug\n", config{
			Domain:   graphcalc.Domain{Min: -1, Max: 1, Step: 0.5},
			Clamp:    10,
			Format:   "json",
			LogLevel: "debug",
		}},
		{"partial", "domain:\n  min: -5\nformat: yaml\n", config{
			Domain:   graphcalc.Domain{Min: -5, Max: 10, Step: 0.2},
			Clamp:    graphcalc.ClampLimit,
			Format:   "yaml",
			LogLevel: "info",
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := loadConfig(writeConfig(t, c.text))
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %+v, got %+v", c.want, got)
			}
			if err := got.validate(); err != nil {
				t.Errorf("config is invalid: %v", err)
			}
		})
	}
}

func TestLoadConfigDefault(t *testing.T) {
	got, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if got != defaultConfig() {
		t.Errorf("want defaults, got %+v", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		msg  string
	}{
		{"unknown", "colour: red\n", "reading config"},
		{"syntax", "domain: [\n", "reading config"},
		{"type", "clamp: lots\n", "reading config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, c.text))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), c.msg) {
				t.Errorf("%q doesn't mention %q", err, c.msg)
			}
		})
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*config)
		msg  string
	}{
		{"reversed", func(c *config) { c.Domain.Min, c.Domain.Max = 1, -1 }, "invalid domain"},
		{"step", func(c *config) { c.Domain.Step = 0 }, "invalid domain"},
		{"huge", func(c *config) { c.Domain.Step = 1e-9 }, "too many points"},
		{"clamp", func(c *config) { c.Clamp = 0 }, "clamp"},
		{"format", func(c *config) { c.Format = "csv" }, "format"},
		{"level", func(c *config) { c.LogLevel = "loud" }, "log level"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			c.edit(&cfg)
			err := cfg.validate()
			if err == nil {
				t.Fatalf("%+v is valid", cfg)
			}
			if !strings.Contains(err.Error(), c.msg) {
				t.Errorf("%q doesn't mention %q", err, c.msg)
			}
		})
	}
}
