package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scan tokenizes source and strips positions so tests can compare values.
func scan(source string) []Token {
	tokens := ReadAll(NewDefaultScanner("", source))
	for i := range tokens {
		tokens[i].Pos = Position{}
	}
	return tokens
}

func TestScannerClassification(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Keyword, Value: "grammar"},
		{Type: Space, Value: " "},
		{Type: Ident, Value: "g"},
		{Type: Symbol, Value: ";"},
		{Type: EOF},
	}, scan("grammar g;"))
}

func TestScannerKeywordsVersusIdentifiers(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Keyword, Value: "tokens"},
		{Type: Space, Value: " "},
		{Type: Ident, Value: "tokenset"},
		{Type: Space, Value: " "},
		{Type: Ident, Value: "non-terminal_name"},
		{Type: EOF},
	}, scan("tokens tokenset non-terminal_name"))
}

func TestScannerLiterals(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Literal, Value: "[a-z]+"},
		{Type: Space, Value: " "},
		{Type: Literal, Value: "a"},
		{Type: EOF},
	}, scan(`"[a-z]+" 'a'`))
}

func TestScannerUnterminatedLiteral(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Invalid, Value: `"abc`},
		{Type: EOF},
	}, scan(`"abc`))
}

func TestScannerNumbers(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Number, Value: "42"},
		{Type: Space, Value: " "},
		{Type: Number, Value: "007"},
		{Type: EOF},
	}, scan("42 007"))
}

func TestScannerComments(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Comment, Value: "// line"},
		{Type: Space, Value: "\n"},
		{Type: Comment, Value: "/* block\ncomment */"},
		{Type: EOF},
	}, scan("// line\n/* block\ncomment */"))
}

func TestScannerSymbolLongestMatch(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Symbol, Value: "{"},
		{Type: Symbol, Value: "}"},
		{Type: Symbol, Value: "->"},
		{Type: Symbol, Value: "{:"},
		{Type: Literal, Value: ""},
		{Type: Symbol, Value: ":}"},
		{Type: EOF},
	}, scan("{}->{::}"))
}

func TestScannerSemanticActionPayload(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Symbol, Value: "{:"},
		{Type: Literal, Value: ` return "x"; `},
		{Type: Symbol, Value: ":}"},
		{Type: EOF},
	}, scan(`{: return "x"; :}`))
}

func TestScannerUnterminatedSemanticAction(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Symbol, Value: "{:"},
		{Type: Literal, Value: " code"},
		{Type: EOF},
	}, scan("{: code"))
}

func TestScannerInvalid(t *testing.T) {
	require.Equal(t, []Token{
		{Type: Invalid, Value: "%"},
		{Type: Ident, Value: "a"},
		{Type: EOF},
	}, scan("%a"))
}

func TestScannerPositions(t *testing.T) {
	s := NewDefaultScanner("test.gram", "ab\ncd")
	require.Equal(t, Token{
		Type:  Ident,
		Value: "ab",
		Pos:   Position{Filename: "test.gram", Offset: 0, Line: 1, Column: 1},
	}, s.Next())
	require.Equal(t, Token{
		Type:  Space,
		Value: "\n",
		Pos:   Position{Filename: "test.gram", Offset: 2, Line: 1, Column: 3},
	}, s.Next())
	require.Equal(t, Token{
		Type:  Ident,
		Value: "cd",
		Pos:   Position{Filename: "test.gram", Offset: 3, Line: 2, Column: 1},
	}, s.Next())
	eof := s.Next()
	require.True(t, eof.EOF())
	require.Equal(t, Position{Filename: "test.gram", Offset: 5, Line: 2, Column: 3}, eof.Pos)
}

func TestScannerEOFIsSticky(t *testing.T) {
	s := NewDefaultScanner("", "")
	require.True(t, s.Next().EOF())
	require.True(t, s.Next().EOF())
}
