// Package propositions parses propositional logic formulas.
//
// Formulas are written with single uppercase letters for variables and the
// operators & (and), | or v (or), > (implies), and prefix - (not), grouped
// with parentheses. From loosest to tightest, the operators bind as
// > then | then & then -. "-A & B > C | D" is the same as
// "((-A) & B) > (C | D)". Binary operators associate to the left.
//
// Parsing produces an *Expr, an immutable tree that may share subtrees.
// Trees can also be built directly with Var, Not, And, Or, and Implies.
//
package propositions
