package propositions

import "strconv"

// Expr is a propositional formula. An Expr is immutable once created, so
// subtrees may be shared freely between formulas and goroutines. The zero
// value is not a valid formula; use Var, Not, And, Or, Implies, or Parse.
type Expr struct {
	kind Kind

	name string

	// left is the operand of a negation or the left side of a binary
	// operator. right is the right side of a binary operator.
	left  *Expr
	right *Expr
}

// Kind is the kind of an Expr.
type Kind int8

const (
	kindNone Kind = iota

	KindVar     // name
	KindNot     // negate left
	KindAnd     // left and right
	KindOr      // left or right
	KindImplies // left implies right
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindImplies:
		return "Implies"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// binary reports whether the kind has two operands.
func (k Kind) binary() bool {
	return k == KindAnd || k == KindOr || k == KindImplies
}

// Var creates a variable. Panics if name is empty.
func Var(name string) *Expr {
	if name == "" {
		panic("propositions: empty variable name")
	}
	return &Expr{kind: KindVar, name: name}
}

// Vars creates a variable for each name, in order. Panics if any name is
// empty.
func Vars(names ...string) []*Expr {
	r := make([]*Expr, len(names))
	for i, name := range names {
		r[i] = Var(name)
	}
	return r
}

// Not creates the negation of x. Panics if x is nil.
func Not(x *Expr) *Expr {
	mustExpr(x)
	return &Expr{kind: KindNot, left: x}
}

// And creates the conjunction of l and r. Panics if either is nil.
func And(l, r *Expr) *Expr {
	return binary(KindAnd, l, r)
}

// Or creates the disjunction of l and r. Panics if either is nil.
func Or(l, r *Expr) *Expr {
	return binary(KindOr, l, r)
}

// Implies creates the implication with antecedent l and consequent r. Panics
// if either is nil.
func Implies(l, r *Expr) *Expr {
	return binary(KindImplies, l, r)
}

func binary(k Kind, l, r *Expr) *Expr {
	mustExpr(l)
	mustExpr(r)
	return &Expr{kind: k, left: l, right: r}
}

func mustExpr(x *Expr) {
	if x == nil || x.kind == kindNone {
		panic("propositions: nil or zero operand")
	}
}

// Not is shorthand for Not(x).
func (x *Expr) Not() *Expr {
	return Not(x)
}

// And is shorthand for And(x, y).
func (x *Expr) And(y *Expr) *Expr {
	return And(x, y)
}

// Or is shorthand for Or(x, y).
func (x *Expr) Or(y *Expr) *Expr {
	return Or(x, y)
}

// Implies is shorthand for Implies(x, y).
func (x *Expr) Implies(y *Expr) *Expr {
	return Implies(x, y)
}

// Kind returns the kind of the expression.
func (x *Expr) Kind() Kind {
	return x.kind
}

// Name returns the name of a variable, or the empty string for any other
// kind.
func (x *Expr) Name() string {
	return x.name
}

// Left returns the left operand of a binary expression, or nil for any other
// kind.
func (x *Expr) Left() *Expr {
	if !x.kind.binary() {
		return nil
	}
	return x.left
}

// Right returns the right operand of a binary expression, or nil for any
// other kind.
func (x *Expr) Right() *Expr {
	if !x.kind.binary() {
		return nil
	}
	return x.right
}

// Operand returns the operand of a negation, or nil for any other kind.
func (x *Expr) Operand() *Expr {
	if x.kind != KindNot {
		return nil
	}
	return x.left
}

// Equal reports whether x and y are structurally equal. Whether the two share
// any subtrees makes no difference.
func (x *Expr) Equal(y *Expr) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil || x.kind != y.kind {
		return false
	}
	switch x.kind {
	case KindVar:
		return x.name == y.name
	case KindNot:
		return x.left.Equal(y.left)
	case KindAnd, KindOr, KindImplies:
		return x.left.Equal(y.left) && x.right.Equal(y.right)
	default:
		return false
	}
}

// Subexpressions lists x and every expression below it in pre-order: each
// expression, followed by the listing of its left operand, followed by that
// of its right operand. An entry is omitted when it is equal to the entry
// immediately before it, so e.g. A & A lists as [A & A, A]. Equal entries
// which are not adjacent are all kept; the result is not a set.
func (x *Expr) Subexpressions() []*Expr {
	var r []*Expr
	x.walk(func(y *Expr) {
		if len(r) > 0 && r[len(r)-1].Equal(y) {
			return
		}
		r = append(r, y)
	})
	return r
}

// Variables returns the sorted names of the variables in x, each once.
func (x *Expr) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	x.walk(func(y *Expr) {
		if y.kind == KindVar && !seen[y.name] {
			seen[y.name] = true
			names = append(names, y.name)
		}
	})
	sortstrs(names)
	return names
}

// walk calls f on each expression in x in pre-order.
func (x *Expr) walk(f func(*Expr)) {
	f(x)
	switch x.kind {
	case KindVar:
	case KindNot:
		x.left.walk(f)
	case KindAnd, KindOr, KindImplies:
		x.left.walk(f)
		x.right.walk(f)
	default:
		panic("propositions: invalid expression kind " + x.kind.String())
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
