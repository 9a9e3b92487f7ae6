// Package lexer tokenizes grammar-description source text.
//
// The scanner classifies input into a fixed set of token classes
// (keywords, identifiers, literals, symbols, numbers, comments,
// whitespace and invalid input) and never fails: unrecognizable input
// becomes an Invalid token for the parser to reject. PeekingLexer
// upgrades a Scanner with one-token-ahead peeking, explicit consume,
// and elision of comment/whitespace tokens.
package lexer

import (
	"fmt"
	"io"
)

const (
	// EOF represents the end of the token stream.
	EOF rune = -(iota + 1)
	// Keyword is a reserved word (see DefaultKeywords).
	Keyword
	// Ident is an identifier: a letter followed by letters, '_' or '-'.
	Ident
	// Literal is a quoted string, with the quotes stripped, or the raw
	// payload of a {: ... :} semantic action.
	Literal
	// Symbol is a punctuation symbol (see DefaultSymbols).
	Symbol
	// Number is a run of decimal digits.
	Number
	// Comment is a // line comment or /* block comment */.
	Comment
	// Space is a run of whitespace.
	Space
	// Invalid is input that matched no other class.
	Invalid
)

var symbolNames = map[rune]string{
	EOF:     "EOF",
	Keyword: "Keyword",
	Ident:   "Ident",
	Literal: "Literal",
	Symbol:  "Symbol",
	Number:  "Number",
	Comment: "Comment",
	Space:   "Space",
	Invalid: "Invalid",
}

// Symbols returns a map of symbolic names to the pseudo-runes for the token
// classes produced by the scanner.
func Symbols() map[string]rune {
	out := make(map[string]rune, len(symbolNames))
	for rn, name := range symbolNames {
		out[name] = rn
	}
	return out
}

// SymbolName returns the name of a token class.
func SymbolName(t rune) string {
	if name, ok := symbolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%q", t)
}

// Position of a token in the source text.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token produced by the scanner.
type Token struct {
	// Type of token, one of the pseudo-runes above.
	Type  rune
	Value string
	Pos   Position
}

// EOF returns true if this token marks the end of the stream.
func (t Token) EOF() bool { return t.Type == EOF }

// EqualValue reports structural equality: same class and same payload,
// ignoring position.
func (t Token) EqualValue(o Token) bool {
	return t.Type == o.Type && t.Value == o.Value
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

// GoString makes failed test assertions readable.
func (t Token) GoString() string {
	return fmt.Sprintf("Token{%s, %q}", SymbolName(t.Type), t.Value)
}

// A TokenSource produces a stream of tokens terminated by an EOF token.
type TokenSource interface {
	// Next consumes and returns the next token.
	Next() Token
}

type namedReader interface {
	Name() string
}

// NameOfReader attempts to retrieve the filename of a reader.
func NameOfReader(r io.Reader) string {
	if nr, ok := r.(namedReader); ok {
		return nr.Name()
	}
	return ""
}

// ReadAll drains a token source, including the terminating EOF token.
func ReadAll(source TokenSource) []Token {
	out := []Token{}
	for {
		token := source.Next()
		out = append(out, token)
		if token.EOF() {
			return out
		}
	}
}
