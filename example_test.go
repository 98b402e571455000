package propositions_test

import (
	"fmt"

	"github.com/zephyrtronium/propositions"
)

func ExampleParseString() {
	x, err := propositions.ParseString("-A & B > C v D")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	fmt.Println(x.Source())
	fmt.Println(x.Variables())

	// Output:
	// ((~A & B) -> (C v D))
	// ((-A & B) > (C | D))
	// [A B C D]
}

func ExampleParseString_error() {
	_, err := propositions.ParseString("(A & B))")
	fmt.Println(err)

	// Output:
	// 8: close bracket ) with no open bracket
}

func ExampleVars() {
	v := propositions.Vars("A", "B")
	a, b := v[0], v[1]
	x := a.Or(b.Not()).Implies(b)
	fmt.Println(x)

	// Output:
	// ((A v ~B) -> B)
}

func ExampleExpr_Subexpressions() {
	a, b, c := propositions.Var("A"), propositions.Var("B"), propositions.Var("C")
	for _, x := range a.And(b.Or(c)).Subexpressions() {
		fmt.Println(x)
	}

	// Output:
	// (A & (B v C))
	// A
	// (B v C)
	// B
	// C
}
