package gram

import (
	"fmt"
	"io"
	"os"

	"github.com/gramlang/gram/lexer"
)

const (
	sectionExpectation = `"grammar", "tokens" or "productions"`
	factorExpectation  = "an identifier, a literal or a bracketed expression"
)

// Parser builds an AST from a grammar description using recursive descent
// with one token of lookahead. One parse method per grammar rule, mutually
// recursive the same way the rules are.
//
// A Parser parses a single document; create a new one per input.
type Parser struct {
	lex   *lexer.PeekingLexer
	root  *ASTNode
	seq   int
	trace Trace
	out   io.Writer
}

// New creates a Parser reading a grammar description from r. The filename
// used in error positions is recovered from the reader where possible.
func New(r io.Reader, options ...Option) (*Parser, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(lexer.NameOfReader(r), string(source), options...)
}

// NewFromString creates a Parser over raw grammar description text.
func NewFromString(filename, source string, options ...Option) (*Parser, error) {
	scanner := lexer.NewDefaultScanner(filename, source)
	p := &Parser{
		lex:  lexer.Upgrade(scanner, lexer.Comment, lexer.Space),
		root: NewASTNode(Root{}),
		out:  os.Stdout,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse consumes the entire token stream and returns the tree root.
//
// Parsing stops at the first error. The returned tree is whatever was built
// up to that point, so it is present but not necessarily complete when err
// is non-nil. Trace output is emitted only on success.
func (p *Parser) Parse() (*ASTNode, error) {
	if err := p.parseSyntax(); err != nil {
		return p.root, err
	}
	p.emitTrace()
	return p.root, nil
}

// Root returns the tree root.
func (p *Parser) Root() *ASTNode { return p.root }

// Walk visits the tree depth-first in pre-order.
func (p *Parser) Walk(visit func(*ASTNode)) { p.root.Walk(visit) }

// WalkIndent visits the tree in pre-order with each node's box-drawing
// indentation prefix.
func (p *Parser) WalkIndent(visit func(*ASTNode, string)) { p.root.WalkIndent(visit) }

// Print writes the box-drawing rendering of the tree to w.
func (p *Parser) Print(w io.Writer) { p.root.Render(w) }

func (p *Parser) emitTrace() {
	if p.trace&TraceNodes != 0 {
		p.root.Walk(func(n *ASTNode) {
			fmt.Fprintln(p.out, n.Node.Describe())
		})
	}
	if p.trace&TraceTree != 0 {
		p.root.Render(p.out)
	}
}

// expect consumes the next token and requires it to be of the given class.
// End of input where a token is required is its own error.
func (p *Parser) expect(typ rune, context string) (lexer.Token, error) {
	tok := p.lex.Next()
	if tok.EOF() {
		return tok, &UnexpectedEOFError{Expected: context, Pos: tok.Pos}
	}
	if tok.Type != typ {
		return tok, &UnexpectedTokenError{Unexpected: tok, Expected: context}
	}
	return tok, nil
}

// accept consumes the next token only if it is the given symbol. Optional
// separators are handled uniformly with this: peek, compare, consume on
// match, proceed either way.
func (p *Parser) accept(symbol string) bool {
	if p.at(symbol) {
		p.lex.Consume()
		return true
	}
	return false
}

func (p *Parser) at(symbol string) bool {
	tok := p.lex.Peek(0)
	return tok.Type == lexer.Symbol && tok.Value == symbol
}

// Syntax : { Grammar | Tokens | Productions } ;
func (p *Parser) parseSyntax() error {
	for {
		tok := p.lex.Next()
		if tok.EOF() {
			return nil
		}
		if tok.Type != lexer.Keyword {
			return &UnexpectedTokenError{Unexpected: tok, Expected: sectionExpectation}
		}
		var err error
		switch tok.Value {
		case "grammar":
			err = p.parseGrammar()
		case "tokens":
			err = p.parseTokens()
		case "productions":
			err = p.parseProductions()
		default:
			err = &UnexpectedTokenError{Unexpected: tok, Expected: sectionExpectation}
		}
		if err != nil {
			return err
		}
	}
}

// Grammar : 'grammar' Identifier ';' ;
func (p *Parser) parseGrammar() error {
	name, err := p.expect(lexer.Ident, "a grammar name")
	if err != nil {
		return err
	}
	p.root.Append(NewASTNode(Grammar{Name: name.Value}))
	p.accept(";")
	return nil
}

// Tokens : 'tokens' '{' { Identifier ':' Literal } '}' ;
//
// Entries that are not an identifier followed by a literal are skipped
// without producing a node.
func (p *Parser) parseTokens() error {
	p.accept("{")
	for !p.at("}") && !p.lex.Peek(0).EOF() {
		tok := p.lex.Next()
		if tok.Type != lexer.Ident {
			continue
		}
		p.accept(":")
		value := p.lex.Peek(0)
		if value.Type != lexer.Literal {
			continue
		}
		p.lex.Consume()
		p.root.Append(NewASTNode(TokenDef{Name: tok.Value, Value: value.Value}))
	}
	p.accept("}")
	return nil
}

// Productions : 'productions' '{' { Production } '}' ;
func (p *Parser) parseProductions() error {
	p.accept("{")
	for !p.at("}") && !p.lex.Peek(0).EOF() {
		if err := p.parseProduction(); err != nil {
			return err
		}
	}
	p.accept("}")
	return nil
}

// Production : Identifier ':' Expression ';' ;
func (p *Parser) parseProduction() error {
	name, err := p.expect(lexer.Ident, "a production name")
	if err != nil {
		return err
	}
	p.seq++
	prod := p.root.Append(NewASTNode(Production{Seq: p.seq}))
	prod.Append(NewASTNode(LHS{Name: name.Value}))
	p.accept(":")
	if err := p.parseExpression(prod); err != nil {
		return err
	}
	p.accept(";")
	return nil
}

// Expression : Term { '|' Term } ;
//
// Alternation is flattened: N terms become N term subtrees interleaved with
// N-1 "|" markers, all direct children of parent.
func (p *Parser) parseExpression(parent *ASTNode) error {
	if err := p.parseTerm(parent); err != nil {
		return err
	}
	for p.accept("|") {
		parent.Append(NewASTNode(Punct{Text: "|"}))
		if err := p.parseTerm(parent); err != nil {
			return err
		}
	}
	return nil
}

// Term : Factor { Factor } ;
//
// Concatenation has no separator token; adjacency is the operator.
func (p *Parser) parseTerm(parent *ASTNode) error {
	if err := p.parseFactor(parent); err != nil {
		return err
	}
	for startsFactor(p.lex.Peek(0)) {
		if err := p.parseFactor(parent); err != nil {
			return err
		}
	}
	return nil
}

func startsFactor(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.Ident, lexer.Literal:
		return true
	case lexer.Symbol:
		switch tok.Value {
		case "[", "(", "{", "{:":
			return true
		}
	}
	return false
}

var groupClosers = map[string]string{"[": "]", "(": ")", "{": "}"}

// Factor : Identifier | Literal
//        | '[' Expression ']' | '(' Expression ')' | '{' Expression '}'
//        | '{:' CODE_STRING ':}' ;
func (p *Parser) parseFactor(parent *ASTNode) error {
	tok := p.lex.Peek(0)
	switch {
	case tok.EOF():
		return &UnexpectedEOFError{Expected: factorExpectation, Pos: tok.Pos}

	case tok.Type == lexer.Ident:
		p.lex.Consume()
		parent.Append(NewASTNode(Nonterminal{Name: tok.Value}))

	case tok.Type == lexer.Literal:
		p.lex.Consume()
		parent.Append(NewASTNode(Terminal{Text: tok.Value}))

	case tok.Type == lexer.Symbol && tok.Value == "{:":
		p.lex.Consume()
		code, err := p.expect(lexer.Literal, "semantic action code")
		if err != nil {
			return err
		}
		parent.Append(NewASTNode(SemanticAction{Code: code.Value}))
		p.accept(":}")

	case tok.Type == lexer.Symbol && groupClosers[tok.Value] != "":
		p.lex.Consume()
		closer := groupClosers[tok.Value]
		parent.Append(NewASTNode(Punct{Text: tok.Value}))
		if err := p.parseExpression(parent); err != nil {
			return err
		}
		// A missing closer is tolerated. The closing marker is appended
		// either way so bracket pairs in the tree stay balanced.
		p.accept(closer)
		parent.Append(NewASTNode(Punct{Text: closer}))

	default:
		return &UnexpectedTokenError{Unexpected: tok, Expected: factorExpectation}
	}
	return nil
}
