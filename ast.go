package gram

import (
	"fmt"
	"io"
	"strings"
)

// GrammarNode is the closed set of AST node variants. The variant reflects
// where a token was encountered, not its lexical class: the same identifier
// becomes an LHS on the left of a production and a Nonterminal inside a
// rule body.
type GrammarNode interface {
	grammarNode()
	// Describe returns the flat "(Type description)" form of the node used
	// by trace output.
	Describe() string
}

// Root is the synthetic tree root, exactly one per parse.
type Root struct{}

// Grammar holds the declared grammar name.
type Grammar struct{ Name string }

// TokenDef is one terminal definition from the tokens section.
type TokenDef struct {
	Name  string
	Value string
}

// Production wraps one production rule, numbered in declaration order
// starting at 1.
type Production struct{ Seq int }

// LHS is the left-hand nonterminal of a production.
type LHS struct{ Name string }

// Terminal is a quoted literal appearing in a rule body.
type Terminal struct{ Text string }

// Nonterminal is a referenced rule name appearing in a rule body.
type Nonterminal struct{ Name string }

// SemanticAction holds the uninterpreted payload of a {: ... :} block.
type SemanticAction struct{ Code string }

// Punct is a structural marker ("|", or one of the bracket characters)
// preserved in the tree so that alternation, grouping and repetition shape
// is recoverable from a flat child list.
type Punct struct{ Text string }

func (Root) grammarNode()           {}
func (Grammar) grammarNode()        {}
func (TokenDef) grammarNode()       {}
func (Production) grammarNode()     {}
func (LHS) grammarNode()            {}
func (Terminal) grammarNode()       {}
func (Nonterminal) grammarNode()    {}
func (SemanticAction) grammarNode() {}
func (Punct) grammarNode()          {}

func (Root) Describe() string             { return "(Root)" }
func (g Grammar) Describe() string        { return fmt.Sprintf("(Grammar %q)", g.Name) }
func (t TokenDef) Describe() string       { return fmt.Sprintf("(Token %q %q)", t.Name, t.Value) }
func (p Production) Describe() string     { return fmt.Sprintf("(Production %d)", p.Seq) }
func (l LHS) Describe() string            { return fmt.Sprintf("(LHS %q)", l.Name) }
func (t Terminal) Describe() string       { return fmt.Sprintf("(Terminal %q)", t.Text) }
func (n Nonterminal) Describe() string    { return fmt.Sprintf("(Nonterminal %q)", n.Name) }
func (s SemanticAction) Describe() string { return fmt.Sprintf("(SemanticAction %q)", s.Code) }
func (p Punct) Describe() string          { return fmt.Sprintf("(Punctuation %q)", p.Text) }

// Box-drawing connectors for Render. The last child of a node hangs off a
// different connector than its siblings, and its subtree is indented with
// blanks instead of a continuation bar.
const (
	connectorChild = "┣╸"
	connectorLast  = "┗╸"
	indentChild    = "┃ "
	indentLast     = "  "
)

// ASTNode is one node of the parsed tree. Each node exclusively owns its
// ordered child list; nodes are never shared between parents and the tree
// holds no back references.
type ASTNode struct {
	Node     GrammarNode
	Children []*ASTNode
}

// NewASTNode creates a node with no children.
func NewASTNode(node GrammarNode) *ASTNode {
	return &ASTNode{Node: node}
}

// Append adds a child node, preserving insertion order, and returns the
// child.
func (n *ASTNode) Append(child *ASTNode) *ASTNode {
	n.Children = append(n.Children, child)
	return child
}

// Walk visits the tree depth-first in pre-order: the node itself, then each
// child subtree in insertion order.
func (n *ASTNode) Walk(visit func(*ASTNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// WalkIndent visits the tree in the same order as Walk, passing each node's
// box-drawing indentation prefix. The root receives an empty prefix.
func (n *ASTNode) WalkIndent(visit func(*ASTNode, string)) {
	visit(n, "")
	n.walkIndent("", visit)
}

func (n *ASTNode) walkIndent(indent string, visit func(*ASTNode, string)) {
	for i, child := range n.Children {
		connector, childIndent := connectorChild, indent+indentChild
		if i == len(n.Children)-1 {
			connector, childIndent = connectorLast, indent+indentLast
		}
		visit(child, indent+connector)
		child.walkIndent(childIndent, visit)
	}
}

// Render writes the box-drawing representation of the tree to w.
func (n *ASTNode) Render(w io.Writer) {
	n.WalkIndent(func(node *ASTNode, indent string) {
		fmt.Fprintf(w, "%s%s\n", indent, node.Node.Describe())
	})
}

// String returns the rendered tree.
func (n *ASTNode) String() string {
	var sb strings.Builder
	n.Render(&sb)
	return sb.String()
}
