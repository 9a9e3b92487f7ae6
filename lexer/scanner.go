package lexer

import (
	"sort"
	"strings"
)

// DefaultKeywords are the reserved words of the grammar-description
// language. An identifier matching one of these is classified as a Keyword.
var DefaultKeywords = []string{"grammar", "tokens", "productions"}

// DefaultSymbols are the punctuation symbols of the grammar-description
// language. Multi-character symbols are matched before their prefixes, so
// "{:" wins over "{".
var DefaultSymbols = []string{
	"{:", ":}", "->",
	"|", "[", "]", "(", ")", "{", "}",
	":", ";", ",", ".", "<", ">", "!", "*",
}

const (
	semanticActionOpen  = "{:"
	semanticActionClose = ":}"
)

// Scanner is a hand-written tokenizer over grammar-description source text.
//
// Next never fails: input that matches no class is returned as an Invalid
// token and classification continues on the following character.
type Scanner struct {
	input    string
	pos      Position
	symbols  []string
	keywords map[string]bool
	rawCode  bool
}

// NewScanner creates a Scanner over source with the given symbol and
// keyword sets.
func NewScanner(filename, source string, symbols, keywords []string) *Scanner {
	syms := make([]string, len(symbols))
	copy(syms, symbols)
	sort.SliceStable(syms, func(i, j int) bool { return len(syms[i]) > len(syms[j]) })
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}
	return &Scanner{
		input:    source,
		symbols:  syms,
		keywords: kw,
		pos:      Position{Filename: filename, Line: 1, Column: 1},
	}
}

// NewDefaultScanner creates a Scanner with the default symbol and keyword
// sets.
func NewDefaultScanner(filename, source string) *Scanner {
	return NewScanner(filename, source, DefaultSymbols, DefaultKeywords)
}

// Next consumes and returns the next token. Once the input is exhausted it
// returns EOF tokens forever.
func (s *Scanner) Next() Token {
	if s.pos.Offset >= len(s.input) {
		return Token{Type: EOF, Pos: s.pos}
	}
	if s.rawCode {
		s.rawCode = false
		return s.scanRawCode()
	}

	start := s.pos
	rest := s.input[s.pos.Offset:]
	c := rest[0]
	switch {
	case isSpace(c):
		n := 1
		for n < len(rest) && isSpace(rest[n]) {
			n++
		}
		return s.token(Space, start, rest[:n])

	case strings.HasPrefix(rest, "//"):
		n := strings.IndexByte(rest, '\n')
		if n < 0 {
			n = len(rest)
		}
		return s.token(Comment, start, rest[:n])

	case strings.HasPrefix(rest, "/*"):
		n := strings.Index(rest, "*/")
		if n < 0 {
			// Unterminated block comment swallows the rest of the input.
			n = len(rest)
		} else {
			n += len("*/")
		}
		return s.token(Comment, start, rest[:n])

	case c == '"' || c == '\'':
		n := strings.IndexByte(rest[1:], c)
		if n < 0 {
			return s.token(Invalid, start, rest)
		}
		s.advance(rest[:n+2])
		return Token{Type: Literal, Value: rest[1 : n+1], Pos: start}

	case isLetter(c):
		n := 1
		for n < len(rest) && isIdent(rest[n]) {
			n++
		}
		word := rest[:n]
		if s.keywords[word] {
			return s.token(Keyword, start, word)
		}
		return s.token(Ident, start, word)

	case isDigit(c):
		n := 1
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		return s.token(Number, start, rest[:n])
	}

	for _, sym := range s.symbols {
		if strings.HasPrefix(rest, sym) {
			if sym == semanticActionOpen {
				s.rawCode = true
			}
			return s.token(Symbol, start, sym)
		}
	}
	return s.token(Invalid, start, rest[:1])
}

// scanRawCode returns everything up to (but not including) the ":}" that
// terminates a semantic action, uninterpreted, as a single Literal token.
func (s *Scanner) scanRawCode() Token {
	start := s.pos
	rest := s.input[s.pos.Offset:]
	n := strings.Index(rest, semanticActionClose)
	if n < 0 {
		n = len(rest)
	}
	return s.token(Literal, start, rest[:n])
}

func (s *Scanner) token(typ rune, pos Position, value string) Token {
	s.advance(value)
	return Token{Type: typ, Value: value, Pos: pos}
}

func (s *Scanner) advance(text string) {
	s.pos.Offset += len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.pos.Line++
			s.pos.Column = 1
		} else {
			s.pos.Column++
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c byte) bool {
	return isLetter(c) || c == '_' || c == '-'
}
