package gram

import (
	"fmt"

	"github.com/gramlang/gram/lexer"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// UnexpectedTokenError is returned when a token does not match any of the
// syntactic alternatives valid at that point.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	Expected   string
}

func (u *UnexpectedTokenError) Error() string {
	return lexer.FormatError(u.Unexpected.Pos, u.Message())
}

func (u *UnexpectedTokenError) Message() string {
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected.Value, expected)
}

func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos }

// UnexpectedEOFError is returned when the input ends where a token was
// required.
type UnexpectedEOFError struct {
	Expected string
	Pos      lexer.Position
}

func (u *UnexpectedEOFError) Error() string {
	return lexer.FormatError(u.Pos, u.Message())
}

func (u *UnexpectedEOFError) Message() string {
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	return fmt.Sprintf("unexpected end of input%s", expected)
}

func (u *UnexpectedEOFError) Position() lexer.Position { return u.Pos }
