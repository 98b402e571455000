package propositions

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt int
	eofopt   string
)

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 4096

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// depth is the current nesting depth of brackets and negations.
	depth int
	// maxdepth is the limit on depth.
	maxdepth int
}

// MaxDepth limits how deeply parentheses and negations may nest. Each open
// bracket and each - counts as one level, so "-(-A)" has depth 3. Inputs
// which nest more deeply fail with a *DepthError. n <= 0 means the default.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	if p.maxdepth <= 0 {
		p.maxdepth = DefaultMaxDepth
	}
	return p
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression. Stop characters do not end an expression where an operand
// is expected, e.g. at the beginning of an expression or following an
// operator or bracket. The rune following the stop character is the first
// read by the next Parse on the same source.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF. Panics if any rune is not whitespace.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("propositions: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return eofopt(v)
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = string(o)
	return p
}
