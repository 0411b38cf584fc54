package kapst

import (
	"strconv"

	"github.com/pkg/errors"
)

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the token or character that caused the
	// error.
	Pos() int
}

func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// --- Lexical ---

// UnexpectedCharacterError indicates a byte that cannot begin any token.
type UnexpectedCharacterError struct {
	Char rune
	loc  SourceLocation
}

func (e *UnexpectedCharacterError) Error() string {
	return errpos(e.loc.Start, "unexpected character "+strconv.QuoteRune(e.Char))
}
func (e *UnexpectedCharacterError) Pos() int { return e.loc.Start }

// UnterminatedStringError indicates a string literal missing its closing
// quote.
type UnterminatedStringError struct {
	loc SourceLocation
}

func (e *UnterminatedStringError) Error() string {
	return errpos(e.loc.Start, "unterminated string literal")
}
func (e *UnterminatedStringError) Pos() int { return e.loc.Start }

// UnterminatedBlockCommentError indicates a /* comment missing its closing
// */.
type UnterminatedBlockCommentError struct {
	loc SourceLocation
}

func (e *UnterminatedBlockCommentError) Error() string {
	return errpos(e.loc.Start, "unterminated block comment")
}
func (e *UnterminatedBlockCommentError) Pos() int { return e.loc.Start }

// --- Structural ---

// ExpectedTokenError indicates the parser required a specific token and
// found something else.
type ExpectedTokenError struct {
	Want string
	Got  Token
}

func (e *ExpectedTokenError) Error() string {
	return errpos(e.Got.Loc.Start, "expected "+strconv.Quote(e.Want)+", got "+strconv.Quote(e.Got.Text))
}
func (e *ExpectedTokenError) Pos() int { return e.Got.Loc.Start }

// ExpectedSemicolonOrEndError indicates a statement was not followed by ';'
// or end of input.
type ExpectedSemicolonOrEndError struct {
	Got Token
}

func (e *ExpectedSemicolonOrEndError) Error() string {
	return errpos(e.Got.Loc.Start, "expected ';' or end of input, got "+strconv.Quote(e.Got.Text))
}
func (e *ExpectedSemicolonOrEndError) Pos() int { return e.Got.Loc.Start }

// UnexpectedEndError indicates the input ended where a term was required.
type UnexpectedEndError struct {
	Got Token
}

func (e *UnexpectedEndError) Error() string {
	return errpos(e.Got.Loc.Start, "unexpected end of input")
}
func (e *UnexpectedEndError) Pos() int { return e.Got.Loc.Start }

// --- Grammar ---

// DoubleSuperscriptError indicates a second '^' attached to the same base.
type DoubleSuperscriptError struct {
	Got Token
}

func (e *DoubleSuperscriptError) Error() string {
	return errpos(e.Got.Loc.Start, "double superscript")
}
func (e *DoubleSuperscriptError) Pos() int { return e.Got.Loc.Start }

// DoubleSubscriptError indicates a second '_' attached to the same base.
type DoubleSubscriptError struct {
	Got Token
}

func (e *DoubleSubscriptError) Error() string {
	return errpos(e.Got.Loc.Start, "double subscript")
}
func (e *DoubleSubscriptError) Pos() int { return e.Got.Loc.Start }

// ExpectedScriptArgumentError indicates '^' or '_' with no following
// argument.
type ExpectedScriptArgumentError struct {
	Got Token
}

func (e *ExpectedScriptArgumentError) Error() string {
	return errpos(e.Got.Loc.Start, "expected script argument after "+strconv.Quote(e.Got.Text))
}
func (e *ExpectedScriptArgumentError) Pos() int { return e.Got.Loc.Start }

// ExpectedExpressionAfterOperatorError indicates a binary or unary operator
// with no following operand.
type ExpectedExpressionAfterOperatorError struct {
	Got Token
}

func (e *ExpectedExpressionAfterOperatorError) Error() string {
	return errpos(e.Got.Loc.Start, "expected expression after operator "+strconv.Quote(e.Got.Text))
}
func (e *ExpectedExpressionAfterOperatorError) Pos() int { return e.Got.Loc.Start }

// --- Binding ---

// ExpectedIdentifierAfterLetError indicates 'let' was not followed by an
// identifier.
type ExpectedIdentifierAfterLetError struct {
	Got Token
}

func (e *ExpectedIdentifierAfterLetError) Error() string {
	return errpos(e.Got.Loc.Start, "expected identifier after 'let', got "+strconv.Quote(e.Got.Text))
}
func (e *ExpectedIdentifierAfterLetError) Pos() int { return e.Got.Loc.Start }

// --- Call ---

// ArityMismatchError indicates a call to a fixed-arity form with the wrong
// number of arguments.
type ArityMismatchError struct {
	Name     string
	Expected int
	Got      int
	Token    Token
}

func (e *ArityMismatchError) Error() string {
	return errpos(e.Token.Loc.Start, e.Name+" expects "+strconv.Itoa(e.Expected)+" argument(s), got "+strconv.Itoa(e.Got))
}
func (e *ArityMismatchError) Pos() int { return e.Token.Loc.Start }

// UnsupportedFunctionError indicates a call to a name with no registered
// handler.
type UnsupportedFunctionError struct {
	Name  string
	Token Token
}

func (e *UnsupportedFunctionError) Error() string {
	return errpos(e.Token.Loc.Start, "unsupported function "+strconv.Quote(e.Name))
}
func (e *UnsupportedFunctionError) Pos() int { return e.Token.Loc.Start }

// UnsupportedAccentError indicates an unrecognized accent kind passed to
// accent(base, kind).
type UnsupportedAccentError struct {
	Kind  string
	Token Token
}

func (e *UnsupportedAccentError) Error() string {
	return errpos(e.Token.Loc.Start, "unsupported accent kind "+strconv.Quote(e.Kind))
}
func (e *UnsupportedAccentError) Pos() int { return e.Token.Loc.Start }

// AccentKindMustBeTextError indicates the second argument of accent(...)
// did not reduce to plain text.
type AccentKindMustBeTextError struct {
	Token Token
}

func (e *AccentKindMustBeTextError) Error() string {
	return errpos(e.Token.Loc.Start, "accent kind must be plain text")
}
func (e *AccentKindMustBeTextError) Pos() int { return e.Token.Loc.Start }

// EmptyCasesError indicates cases() was called with no rows.
type EmptyCasesError struct {
	Token Token
}

func (e *EmptyCasesError) Error() string {
	return errpos(e.Token.Loc.Start, "cases requires at least one row")
}
func (e *EmptyCasesError) Pos() int { return e.Token.Loc.Start }

// HandlerError wraps an error returned by an external function handler with
// the position of the call that triggered it. Unwrap returns the original
// error.
type HandlerError struct {
	Name  string
	Token Token
	cause error
}

func wrapHandlerError(name string, tok Token, cause error) *HandlerError {
	return &HandlerError{
		Name:  name,
		Token: tok,
		cause: errors.Wrapf(cause, "handler %q", name),
	}
}

func (e *HandlerError) Error() string { return errpos(e.Token.Loc.Start, e.cause.Error()) }
func (e *HandlerError) Pos() int      { return e.Token.Loc.Start }
func (e *HandlerError) Unwrap() error { return errors.Cause(e.cause) }

var (
	_ InputError = (*UnexpectedCharacterError)(nil)
	_ InputError = (*UnterminatedStringError)(nil)
	_ InputError = (*UnterminatedBlockCommentError)(nil)
	_ InputError = (*ExpectedTokenError)(nil)
	_ InputError = (*ExpectedSemicolonOrEndError)(nil)
	_ InputError = (*UnexpectedEndError)(nil)
	_ InputError = (*DoubleSuperscriptError)(nil)
	_ InputError = (*DoubleSubscriptError)(nil)
	_ InputError = (*ExpectedScriptArgumentError)(nil)
	_ InputError = (*ExpectedExpressionAfterOperatorError)(nil)
	_ InputError = (*ExpectedIdentifierAfterLetError)(nil)
	_ InputError = (*ArityMismatchError)(nil)
	_ InputError = (*UnsupportedFunctionError)(nil)
	_ InputError = (*UnsupportedAccentError)(nil)
	_ InputError = (*AccentKindMustBeTextError)(nil)
	_ InputError = (*EmptyCasesError)(nil)
	_ InputError = (*HandlerError)(nil)
)
