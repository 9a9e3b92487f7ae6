package lexer

// PeekingLexer wraps a token source with non-consuming lookahead, an
// explicit consume step, and elision of uninteresting token classes.
type PeekingLexer struct {
	cursor int
	eof    Token
	tokens []Token
	elide  map[rune]bool
}

// Upgrade a token source to a PeekingLexer.
//
// "elide" is a slice of token classes to skip entirely, typically Comment
// and Space.
func Upgrade(source TokenSource, elide ...rune) *PeekingLexer {
	p := &PeekingLexer{
		elide: make(map[rune]bool, len(elide)),
	}
	for _, rn := range elide {
		p.elide[rn] = true
	}
	for {
		t := source.Next()
		if t.EOF() {
			p.eof = t
			break
		}
		p.tokens = append(p.tokens, t)
	}
	return p
}

// Next consumes and returns the next token, or the EOF token if the stream
// is exhausted.
func (p *PeekingLexer) Next() Token {
	for p.cursor < len(p.tokens) {
		t := p.tokens[p.cursor]
		p.cursor++
		if p.elide[t.Type] {
			continue
		}
		return t
	}
	return p.eof
}

// Peek at the n+1th token without consuming anything. Peek(0) looks at the
// token Next would return.
func (p *PeekingLexer) Peek(n int) Token {
	for i := p.cursor; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if p.elide[t.Type] {
			continue
		}
		if n == 0 {
			return t
		}
		n--
	}
	return p.eof
}

// Consume discards the next token.
func (p *PeekingLexer) Consume() {
	p.Next()
}
