package graphcalc

import (
	"strconv"

	"github.com/pkg/errors"
)

// Error categories. Every error from Parse matches ErrLex or ErrParse with
// errors.Is, and every error from Eval matches ErrEval.
var (
	ErrLex   = errors.New("invalid token")
	ErrParse = errors.New("invalid expression")
	ErrEval  = errors.New("evaluation failed")
)

// UnexpectedTokenError is an error indicating a token where the grammar does
// not allow one, e.g. two infix operators in a row, an operator with no
// operand, or two terms with no operator between them. It implements
// InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token, or the empty string for the end of the
	// input.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

func (err *UnexpectedTokenError) Is(target error) bool {
	return target == ErrParse
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket, or of the end of the input
	// for an open bracket that is never closed.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
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

func (err *BracketError) Is(target error) bool {
	return target == ErrParse
}

// SeparatorError is an error indicating a comma outside a function call. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

func (err *SeparatorError) Is(target error) bool {
	return target == ErrParse
}

// CallError is an error indicating a function call with the wrong number of
// arguments, or a function name that is not followed by a bracketed argument.
// It implements InputError.
type CallError struct {
	// Col is the position of the token following the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the function call tried to imply.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

func (err *CallError) Is(target error) bool {
	return target == ErrParse
}

// EmptyExpressionError is an error indicating an input with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrParse
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError. Positions count runes of the
// normalized input, starting at 1.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
