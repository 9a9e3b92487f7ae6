// Package gram parses textual grammar descriptions into an AST.
//
// A grammar description has three kinds of sections: a grammar name, token
// definitions, and production rules:
//
//	grammar g;
//	tokens {
//		id : "[a-z]+"
//	}
//	productions {
//		S : 'a' S | 'b' ;
//	}
//
// The grammar of grammar descriptions is itself EBNF:
//
//	Syntax      : { Grammar | Tokens | Productions } ;
//	Grammar     : 'grammar' Identifier ';' ;
//	Tokens      : 'tokens' '{' { Identifier ':' Literal } '}' ;
//	Productions : 'productions' '{' { Production } '}' ;
//	Production  : Identifier ':' Expression ';' ;
//	Expression  : Term { '|' Term } ;
//	Term        : Factor { Factor } ;
//	Factor      : Identifier | Literal
//	            | '[' Expression ']' | '(' Expression ')' | '{' Expression '}'
//	            | '{:' CODE_STRING ':}' ;
//
// Parsing is recursive descent with one token of lookahead and no
// backtracking. The resulting tree encodes rule bodies as flat child lists:
// alternation bars and bracket pairs are preserved as punctuation marker
// nodes, so the nesting structure is recoverable without wrapper nodes.
//
//	parser, err := gram.NewFromString("g.gram", source)
//	if err != nil { ... }
//	root, err := parser.Parse()
//	if err != nil { ... }
//	root.Render(os.Stdout)
//
// The parser is a pure syntax-directed tree builder: it performs no
// semantic validation, no left-recursion analysis and no error recovery.
// The first syntax error aborts the parse.
package gram
