package propositions

import "strconv"

// OperatorError is an error indicating an operator in a position where it
// cannot be used, e.g. a binary operator with no left operand. It implements
// SyntaxError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Unary is whether the parser expected an operand or a unary operator at
	// the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "missing operand before operator "+strconv.Quote(err.Operator))
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" cannot join two operands")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unmatched parentheses in the input. It
// implements SyntaxError.
type BracketError struct {
	// Col is the position of the unmatched close bracket, or the end of the
	// input for an unmatched open bracket.
	Col int
	// Left is the open bracket, if the open bracket was not closed.
	Left string
	// Right is the close bracket, if there was no open bracket to close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a missing operand.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating an operand following a complete
// expression with no operator between them, e.g. the B in "A B". It
// implements SyntaxError.
type TrailingError struct {
	// Col is the position of the unexpected token.
	Col int
	// Text is the unexpected token.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "expected operator before "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError is an error indicating parentheses or negations nested more
// deeply than the parser allows. It implements SyntaxError.
type DepthError struct {
	// Col is the position of the token that exceeded the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// SyntaxError is an error with position information. Every error resulting
// from invalid input implements SyntaxError.
type SyntaxError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ SyntaxError = (*OperatorError)(nil)
	_ SyntaxError = (*BracketError)(nil)
	_ SyntaxError = (*EmptyExpressionError)(nil)
	_ SyntaxError = (*TrailingError)(nil)
	_ SyntaxError = (*DepthError)(nil)
	_ SyntaxError = (*LexError)(nil)
)
