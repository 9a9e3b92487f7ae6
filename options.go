package gram

import "io"

// Trace selects diagnostic output emitted after a successful parse.
type Trace uint8

const (
	// TraceNodes emits one flat "(Type description)" line per node in
	// pre-order.
	TraceNodes Trace = 1 << iota
	// TraceTree emits the box-drawing tree rendering.
	TraceTree
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Tracing is an Option selecting which trace output the parser emits after
// a successful parse. The flags are independent and may be combined.
func Tracing(trace Trace) Option {
	return func(p *Parser) error {
		p.trace = trace
		return nil
	}
}

// TraceTo is an Option redirecting trace output from stdout to w.
func TraceTo(w io.Writer) Option {
	return func(p *Parser) error {
		p.out = w
		return nil
	}
}
