package gram_test

import (
	"testing"

	"github.com/gramlang/gram"
	"github.com/gramlang/gram/lexer"
	"github.com/stretchr/testify/require"
)

func TestUnexpectedTokenError(t *testing.T) {
	err := &gram.UnexpectedTokenError{
		Unexpected: lexer.Token{
			Type:  lexer.Symbol,
			Value: "}",
			Pos:   lexer.Position{Filename: "g.gram", Line: 3, Column: 7},
		},
		Expected: "a production name",
	}
	require.Equal(t, `unexpected token "}" (expected a production name)`, err.Message())
	require.Equal(t, `g.gram:3:7: unexpected token "}" (expected a production name)`, err.Error())
	require.Equal(t, lexer.Position{Filename: "g.gram", Line: 3, Column: 7}, err.Position())
}

func TestUnexpectedTokenErrorWithoutExpectation(t *testing.T) {
	err := &gram.UnexpectedTokenError{
		Unexpected: lexer.Token{Type: lexer.Invalid, Value: "%"},
	}
	require.Equal(t, `unexpected token "%"`, err.Message())
}

func TestUnexpectedEOFError(t *testing.T) {
	err := &gram.UnexpectedEOFError{
		Expected: "a grammar name",
		Pos:      lexer.Position{Line: 1, Column: 8},
	}
	require.Equal(t, "unexpected end of input (expected a grammar name)", err.Message())
	require.Equal(t, "<source>:1:8: unexpected end of input (expected a grammar name)", err.Error())
	require.Equal(t, lexer.Position{Line: 1, Column: 8}, err.Position())
}

func TestParseErrorsImplementError(t *testing.T) {
	var _ gram.Error = &gram.UnexpectedTokenError{}
	var _ gram.Error = &gram.UnexpectedEOFError{}
}
