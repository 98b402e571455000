package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	props "github.com/zephyrtronium/propositions"
)

const (
	formatText   = "text"
	formatSource = "source"
	formatYAML   = "yaml"
)

// printer writes parsed formulas in the format selected by flags. In YAML
// format, each formula is one document of a single stream, so the printer
// must be closed after the last formula.
type printer struct {
	w      io.Writer
	format string
	list   bool
	vars   bool
	enc    *yaml.Encoder
	docs   int
}

func newPrinter(w io.Writer, opts *options) (*printer, error) {
	p := printer{w: w, format: opts.format, list: opts.list, vars: opts.vars}
	switch opts.format {
	case formatText, formatSource:
	case formatYAML:
		p.enc = yaml.NewEncoder(w)
		p.enc.SetIndent(2)
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s, %s, or %s)", opts.format, formatText, formatSource, formatYAML)
	}
	return &p, nil
}

func (p *printer) print(x *props.Expr) error {
	xs := []*props.Expr{x}
	if p.list {
		xs = x.Subexpressions()
	}
	switch p.format {
	case formatText, formatSource:
		if p.vars {
			if _, err := fmt.Fprintln(p.w, strings.Join(x.Variables(), " ")); err != nil {
				return err
			}
		}
		for _, x := range xs {
			s := x.String()
			if p.format == formatSource {
				s = x.Source()
			}
			if _, err := fmt.Fprintln(p.w, s); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		p.docs++
		return p.enc.Encode(p.document(x, xs))
	default:
		panic("propositions: unknown format " + p.format)
	}
}

// document builds the YAML document for a formula. Without --vars, it is the
// tree itself, or the list of trees with --list. With --vars, it is a
// yamlDoc holding the variables alongside.
func (p *printer) document(x *props.Expr, xs []*props.Expr) interface{} {
	var trees []*yamlNode
	if p.list {
		trees = make([]*yamlNode, len(xs))
		for i, x := range xs {
			trees[i] = treeOf(x)
		}
	}
	if !p.vars {
		if p.list {
			return trees
		}
		return treeOf(x)
	}
	d := yamlDoc{Vars: x.Variables()}
	if p.list {
		d.Trees = trees
	} else {
		d.Tree = treeOf(x)
	}
	return &d
}

// close finishes the output stream. An encoder which never started a stream
// has nothing to finish.
func (p *printer) close() error {
	if p.enc == nil || p.docs == 0 {
		return nil
	}
	return p.enc.Close()
}

// yamlDoc is the YAML document for a formula printed with its variables.
type yamlDoc struct {
	Vars  []string    `yaml:"vars,flow"`
	Tree  *yamlNode   `yaml:"tree,omitempty"`
	Trees []*yamlNode `yaml:"trees,omitempty"`
}

// yamlNode is the YAML form of an expression.
type yamlNode struct {
	Kind    string    `yaml:"kind"`
	Name    string    `yaml:"name,omitempty"`
	Left    *yamlNode `yaml:"left,omitempty"`
	Right   *yamlNode `yaml:"right,omitempty"`
	Operand *yamlNode `yaml:"operand,omitempty"`
}

func treeOf(x *props.Expr) *yamlNode {
	if x == nil {
		return nil
	}
	return &yamlNode{
		Kind:    strings.ToLower(x.Kind().String()),
		Name:    x.Name(),
		Left:    treeOf(x.Left()),
		Right:   treeOf(x.Right()),
		Operand: treeOf(x.Operand()),
	}
}
