package main

import (
	"github.com/gramlang/gram"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	treeFlag = kingpin.Flag("tree", "Print the parsed grammar as a tree instead of a flat node trace.").Bool()
	fileArg  = kingpin.Arg("file", "Grammar description file to parse.").Required().File()
)

func main() {
	kingpin.CommandLine.Help = `Parse a grammar description and print its syntax tree. Grammar
descriptions are in the form:

  grammar g;
  tokens {
    id : "[a-z]+"
  }
  productions {
    S : 'a' S | 'b' ;
  }
`
	kingpin.Parse()
	defer (*fileArg).Close()

	trace := gram.TraceNodes
	if *treeFlag {
		trace = gram.TraceTree
	}
	parser, err := gram.New(*fileArg, gram.Tracing(trace))
	kingpin.FatalIfError(err, "")
	_, err = parser.Parse()
	kingpin.FatalIfError(err, "")
}
