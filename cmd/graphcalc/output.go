package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/graphcalc"
)

// output is one calculation as printed in the structured formats.
type output struct {
	Source string                 `json:"source" yaml:"source"`
	Kind   string                 `json:"kind" yaml:"kind"`
	Value  string                 `json:"value,omitempty" yaml:"value,omitempty"`
	Points []graphcalc.GraphPoint `json:"points,omitempty" yaml:"points,omitempty"`
	Error  string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// printer writes calculations in one output format.
type printer struct {
	w      io.Writer
	format string
	js     *json.Encoder
	ym     *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, format: format}
	switch format {
	case "json":
		p.js = json.NewEncoder(w)
	case "yaml":
		p.ym = yaml.NewEncoder(w)
		p.ym.SetIndent(2)
	}
	return p
}

// result prints a successful calculation.
func (p *printer) result(r *graphcalc.Result) error {
	o := output{Source: r.Source, Kind: r.Kind.String(), Value: r.Value, Points: r.Points}
	if p.format != "text" {
		return p.encode(o)
	}
	if r.Kind == graphcalc.Scalar {
		_, err := fmt.Fprintln(p.w, r.Value)
		return errors.WithStack(err)
	}
	for _, pt := range r.Points {
		if _, err := fmt.Fprintf(p.w, "%s\t%s\n", graphcalc.Format(pt.X), graphcalc.Format(pt.Y)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// failure prints the label a calculator shows for a failed calculation. The
// cause is left to the log.
func (p *printer) failure(src string, err error) error {
	label := "Error"
	var ee *graphcalc.EvaluationError
	if errors.As(err, &ee) && ee.Graph {
		label = "Invalid Func"
	}
	if p.format != "text" {
		return p.encode(output{Source: src, Kind: "error", Error: label})
	}
	_, err = fmt.Fprintln(p.w, label)
	return errors.WithStack(err)
}

// echo prints a parse tree ahead of its result.
func (p *printer) echo(tree string) error {
	if p.format != "text" {
		return nil
	}
	_, err := fmt.Fprintf(p.w, "%s : ", tree)
	return errors.WithStack(err)
}

func (p *printer) encode(o output) error {
	if p.js != nil {
		return errors.Wrap(p.js.Encode(o), "writing json")
	}
	return errors.Wrap(p.ym.Encode(o), "writing yaml")
}

// close flushes any buffered output.
func (p *printer) close() error {
	if p.ym != nil {
		return errors.Wrap(p.ym.Close(), "writing yaml")
	}
	return nil
}
