package lexer

import "fmt"

// Error represents an error with positional context.
type Error struct {
	Message string
	Pos     Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return FormatError(e.Pos, e.Message)
}

// FormatError formats an error message in the form "<pos>: <message>".
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}
