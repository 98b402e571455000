package propositions

import (
	"bufio"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		u := unop(string(r))
		if b.op == kindNone && u.op == kindNone {
			t.Errorf("no operator for %c", r)
		}
	}
}

func TestOpPrecsOrder(t *testing.T) {
	order := []operator{binop(">"), binop("|"), binop("&"), unop("-")}
	for i := 1; i < len(order); i++ {
		if !order[i].moreBinding(order[i-1]) || order[i-1].moreBinding(order[i]) {
			t.Errorf("%v should bind more tightly than %v", order[i].op, order[i-1].op)
		}
	}
	if binop("|") != binop("v") {
		t.Errorf("| and v differ: %v vs %v", binop("|"), binop("v"))
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(A)", "A"},
		{"multi", "((((A))))", "A"},
		{"spaces", " A\t&\nB ", "A&B"},
		{"vee", "AvB", "A|B"},

		{"and4", "A&B&C&D", "((A&B)&C)&D"},
		{"or4", "A|B|C|D", "((A|B)|C)|D"},
		{"implies4", "A>B>C>D", "((A>B)>C)>D"},
		{"negneg", "--A", "-(-A)"},
		{"negand", "-A&B", "(-A)&B"},
		{"negor", "-A|B", "(-A)|B"},
		{"negimplies", "-A>B", "(-A)>B"},
		{"andneg", "A&-B", "A&(-B)"},
		{"andnegneg", "A&--B", "A&(-(-B))"},

		{"asc", "A>B|C&D", "A>(B|(C&D))"},
		{"desc", "A&B|C>D", "((A&B)|C)>D"},
		{"ascdesc", "A>B|C&D|E>F", "(A>((B|(C&D))|E))>F"},
		{"descasc", "A&B|C>D|E&F", "((A&B)|C)>(D|(E&F))"},
		{"groups", "(A>B)&(C|D)", "(A>B)&(C|D)"},
		{"neggroup", "-(A>B)&C", "(-(A>B))&C"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := ParseString(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			if diff := cmp.Diff(b, a); diff != "" {
				t.Errorf("%q and %q parse differently (-want +got):\n%s", c.a, c.b, diff)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	a, b, c := Var("A"), Var("B"), Var("C")
	cases := []struct {
		name string
		src  string
		x    *Expr
	}{
		{"var", "A", a},
		{"and", "A&B", And(a, b)},
		{"andspaces", "A & B", And(a, b)},
		{"andparen", "(A & B)", And(a, b)},
		{"or", "A|B", Or(a, b)},
		{"orvee", "AvB", Or(a, b)},
		{"implies", "A>B", Implies(a, b)},
		{"not", "-A", Not(a)},
		{"notand", "-(A&B)", Not(And(a, b))},
		{"deep", "(((((A))))&B)", And(a, b)},
		{"andor", "A&(BvC)", And(a, Or(b, c))},
		{"orand", "A|B&C", Or(a, And(b, c))},
		{"impliesor", "A>B|C", Implies(a, Or(b, c))},
		{"and3", "A&B&C", And(And(a, b), c)},
		{"implies3", "A>B>C", Implies(Implies(a, b), c)},
		{"notnot", "--A", Not(Not(a))},
		{"notandright", "-A&B", And(Not(a), b)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if diff := cmp.Diff(c.x, x); diff != "" {
				t.Errorf("mismatched AST from %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestParseEveryVar(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		x, err := ParseString(string(r))
		if err != nil {
			t.Errorf("%c failed to parse: %v", r, err)
			continue
		}
		if x.Kind() != KindVar || x.Name() != string(r) {
			t.Errorf("%c parsed to %v", r, x)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  SyntaxError
		res  []string
		excl []string
	}{
		{"empty", "", new(EmptyExpressionError), []string{`(?i)\b(no|empty)\b.*\bexpression\b`}, []string{`(?i)\bend\b`}},
		{"spaces", "  \t", new(EmptyExpressionError), []string{`(?i)\b(no|empty)\b.*\bexpression\b`}, nil},
		{"emptyparen", "()", new(EmptyExpressionError), []string{`(?i)\b(no|empty)\b.*\bexpression\b`, `\)`}, nil},
		{"emptyoperand", "A&", new(EmptyExpressionError), []string{`(?i)\b(no|empty)\b.*\bexpression\b`, `(?i)\bend\b`}, nil},
		{"emptyunary", "A&-", new(EmptyExpressionError), []string{`(?i)\b(no|empty)\b.*\bexpression\b`, `(?i)\bend\b`}, nil},
		{"emptyinparen", "(A>)", new(EmptyExpressionError), []string{`\)`}, nil},
		{"invalid", "A$B", new(LexError), []string{`\$`}, nil},
		{"invalid2", "A&B#C", new(LexError), []string{`#`}, nil},
		{"digit", "A&1", new(LexError), []string{`1`}, nil},
		{"lower", "a&B", new(LexError), []string{`"a"`}, nil},
		{"tilde", "~A", new(LexError), []string{`~`}, nil},
		{"repeated", "A&&B", new(OperatorError), []string{`(?i)\bop`, `&`}, nil},
		{"only", "&|>", new(OperatorError), []string{`(?i)\bop`, `&`}, nil},
		{"leading", "|A", new(OperatorError), []string{`\|`}, nil},
		{"binaryneg", "A-B", new(OperatorError), []string{`-`}, nil},
		{"arrow", "A->B", new(OperatorError), []string{`-`}, nil},
		{"left", "(A", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}, nil},
		{"left2", "((A)&B", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}, nil},
		{"right", "A)", new(BracketError), []string{`(?i)\bbracket\b`, `\)`}, nil},
		{"nesting", "(A&B))|(C", new(BracketError), []string{`(?i)\bbracket\b`, `\)`}, nil},
		{"juxtaposed", "AB", new(TrailingError), []string{`(?i)\boperator\b`, `"B"`}, nil},
		{"juxtaposedparen", "A (B)", new(TrailingError), []string{`(?i)\boperator\b`, `"\("`}, nil},
		{"trailinggroup", "(A)B", new(TrailingError), []string{`"B"`}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if err == nil {
				return
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
			for _, re := range c.excl {
				if regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q matches %s", msg, re)
				}
			}
		})
	}
}

func TestParseErrorPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"", 1},
		{"A$B", 2},
		{"A & B # C", 7},
		{"A&&B", 3},
		{"(A&B))|(C", 6},
		{"(A", 3},
		{"A B", 3},
		{"A &", 4},
	}
	for _, c := range cases {
		_, err := ParseString(c.src)
		var se SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q gave non-syntax error %#v", c.src, err)
			continue
		}
		if se.Pos() != c.pos {
			t.Errorf("%q gave error at %d, want %d: %v", c.src, se.Pos(), c.pos, err)
		}
	}
}

func TestParseReadError(t *testing.T) {
	errBad := errors.New("bad reader")
	src := bufio.NewReader(iotest.ErrReader(errBad))
	x, err := Parse(src)
	if x != nil {
		t.Errorf("parsed %v from failed reader", x)
	}
	if !errors.Is(err, errBad) {
		t.Errorf("want %v, got %v", errBad, err)
	}
}

func TestMaxDepth(t *testing.T) {
	cases := []struct {
		name string
		src  string
		max  int
		ok   bool
	}{
		{"flat", "A&B", 1, true},
		{"paren", "(A)", 1, true},
		{"paren2", "((A))", 1, false},
		{"neg", "-A", 1, true},
		{"negneg", "--A", 1, false},
		{"negparen", "-(-A)", 3, true},
		{"negparen-over", "-(-A)", 2, false},
		{"siblings", "(A)&(B)&(C)", 1, true},
		{"default", strings.Repeat("(", 100) + "A" + strings.Repeat(")", 100), 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := ParseString(c.src, MaxDepth(c.max))
			if c.ok {
				if err != nil {
					t.Errorf("%q with max depth %d failed: %v", c.src, c.max, err)
				}
				return
			}
			if _, ok := err.(*DepthError); !ok {
				t.Errorf("%q with max depth %d gave %v, %#v", c.src, c.max, x, err)
			}
		})
	}
}

func TestMaxDepthDefault(t *testing.T) {
	deep := strings.Repeat("-", DefaultMaxDepth) + "A"
	if _, err := ParseString(deep); err != nil {
		t.Errorf("depth %d failed: %v", DefaultMaxDepth, err)
	}
	_, err := ParseString("-" + deep)
	if de, ok := err.(*DepthError); !ok || de.Max != DefaultMaxDepth {
		t.Errorf("depth %d gave %#v", DefaultMaxDepth+1, err)
	}
}

func TestStopOn(t *testing.T) {
	cases := []struct {
		name string
		src  string
		stop string
		want []string
		errs []error
	}{
		{"newline", "A\nB", "\n", []string{"A", "B"}, nil},
		{"multinl", "A&B\n\n-C", "\n", []string{"A&B", "-C"}, nil},
		{"operator", "A&\nB\nC", "\n", []string{"A&B", "C"}, nil},
		{"space", "A B", " ", []string{"A", "B"}, nil},
		{"nostop", "A\nB", "", []string{""}, []error{new(TrailingError)}},
		{"open", "(A\n)", "\n", []string{""}, []error{new(BracketError)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := strings.NewReader(c.src)
			for i, want := range c.want {
				a, err := Parse(src, StopOn([]rune(c.stop)...))
				if err != nil {
					switch {
					case i >= len(c.errs), c.errs[i] == nil:
						t.Errorf("%q iter %d didn't parse: %v", c.src, i, err)
					case reflect.TypeOf(err) != reflect.TypeOf(c.errs[i]):
						t.Errorf("%q iter %d gave wrong error: want %T, got %#v", c.src, i, c.errs[i], err)
					}
					continue
				}
				w, err := ParseString(want)
				if err != nil {
					t.Fatalf("bad test: %q failed to parse: %v", want, err)
				}
				if !a.Equal(w) {
					t.Errorf("%q iter %d parsed to %v, want %v", c.src, i, a, w)
				}
			}
			if len(c.errs) > 0 {
				return
			}
			a, err := Parse(src)
			if _, ok := err.(*EmptyExpressionError); !ok {
				t.Errorf("%q after %d iters parsed with error %#v and parse tree %v", c.src, len(c.want), err, a)
			}
		})
	}
}

func TestStopOnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StopOn(',') did not panic")
		}
	}()
	StopOn(',')
}

func TestSourceRoundTrip(t *testing.T) {
	cases := []string{
		"A",
		"-A",
		"--A",
		"A&B",
		"AvB",
		"A>B>C",
		"A>(B>C)",
		"-(A&B)|C",
		"A&B|C>D|E&F",
		"-(-A>-(B|-C))",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			a, err := ParseString(src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", src, err)
			}
			s := a.Source()
			b, err := ParseString(s)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", src, s, err)
			}
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("%q -> %q changed the tree (-orig +reparsed):\n%s", src, s, diff)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"var", "A"},
		{"descasc", "A&B|C>D|E&F"},
		{"descasc-parens", "((A&B)|C)>(D|(E&F))"},
		{"neg", "-(-A>-(B|-C))"},
		{"deep", "(((((((((((((((A)))))))))))))))"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var src strings.Reader
			for i := 0; i < b.N; i++ {
				src.Reset(c.src)
				Parse(&src)
			}
		})
	}
}
