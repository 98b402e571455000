package propositions

import (
	"io"
	"strings"
)

// Expr = var | Not | And | Or | Implies | '(' Expr ')'
// Not = '-' Expr
// And = Expr '&' Expr
// Or = Expr '|' Expr | Expr 'v' Expr
// Implies = Expr '>' Expr

// Parse parses a formula. The given options are applied in order. On error,
// the result is nil, and the error is either a SyntaxError or an error from
// reading src.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("propositions: parse ended on " + tok.String())
	}
	return n, nil
}

// ParseString parses a formula from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses a term whose operators all bind more tightly than until.
// If there is no error, then parseterm pushes the last token it scans, which
// is EOF, a close bracket, or an operator that does not bind tightly enough.
func parseterm(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	n, err := parselhs(scan, p)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenVar, tokenOpen:
			// Two operands in a row, e.g. A B or A (B).
			return nil, &TrailingError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == kindNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &Expr{kind: prec.op, left: n, right: rhs}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("propositions: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term: a variable, a negation, or
// a bracketed expression. Operators are unary here, and whitespace normally
// lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx) (*Expr, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenVar:
		return &Expr{kind: KindVar, name: tok.text}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == kindNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		return &Expr{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Left: tok.text}
		}
		return rhs, nil
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("propositions: unknown token: " + tok.String())
	}
}

// enter increases the nesting depth for a bracket or unary operator.
func (p *parsectx) enter(tok lexToken) error {
	if p.depth >= p.maxdepth {
		return &DepthError{Col: tok.pos, Max: p.maxdepth}
	}
	p.depth++
	return nil
}

func (p *parsectx) leave() {
	p.depth--
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the expression kind to use when this operator is selected.
	op Kind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of kindNone.
func binop(text string) operator {
	switch text {
	case ">":
		return operator{1, false, KindImplies}
	case "|", "v":
		return operator{2, false, KindOr}
	case "&":
		return operator{3, false, KindAnd}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of kindNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{4, true, KindNot}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, kindNone}
