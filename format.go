package propositions

import "strings"

// notation is a set of operator spellings for rendering.
type notation struct {
	not, and, or, implies string
}

var (
	// canonical is the notation of Expr.String.
	canonical = notation{not: "~", and: " & ", or: " v ", implies: " -> "}
	// source is the notation that Parse reads.
	source = notation{not: "-", and: " & ", or: " | ", implies: " > "}
)

// String renders the expression with every binary operation parenthesized,
// using & for and, v for or, -> for implies, and ~ for not, e.g.
// "(~A -> (B v C))". The result is meant for reading; Parse does not accept
// it. Use Source for text that parses back to the same expression.
func (x *Expr) String() string {
	var b strings.Builder
	x.fmt(&b, &canonical)
	return b.String()
}

// Source renders the expression the same way as String, but in the syntax
// that Parse reads, e.g. "(-A > (B | C))". Parsing the result gives an
// expression equal to x as long as every variable name in x is a single
// uppercase letter and the nesting limit allows the added parentheses.
func (x *Expr) Source() string {
	var b strings.Builder
	x.fmt(&b, &source)
	return b.String()
}

func (x *Expr) fmt(b *strings.Builder, n *notation) {
	switch x.kind {
	case KindVar:
		b.WriteString(x.name)
	case KindNot:
		b.WriteString(n.not)
		x.left.fmt(b, n)
	case KindAnd:
		x.fmtbinary(b, n, n.and)
	case KindOr:
		x.fmtbinary(b, n, n.or)
	case KindImplies:
		x.fmtbinary(b, n, n.implies)
	default:
		panic("propositions: invalid expression kind " + x.kind.String() + " after writing " + b.String())
	}
}

func (x *Expr) fmtbinary(b *strings.Builder, n *notation, op string) {
	b.WriteByte('(')
	x.left.fmt(b, n)
	b.WriteString(op)
	x.right.fmt(b, n)
	b.WriteByte(')')
}
