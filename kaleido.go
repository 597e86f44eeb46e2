// Package kaleido is the front end of a toy compiler for the Kaleidoscope
// language: a lexer, a recursive-descent parser and the AST they build.
//
// Each top-level form is a function definition, an extern declaration, or a
// bare expression that is wrapped in an anonymous zero-argument function.
// A form either parses completely or is discarded; after a syntax error
// parsing resumes one token later.
package kaleido

import (
	"bytes"
	"context"
)

// ParseAll parses every top-level form in data and returns the successfully
// built nodes and the syntax errors, each in input order.
func ParseAll(data []byte, opts ...ParserOption) ([]Node, []*SyntaxError) {
	var (
		nodes []Node
		errs  []*SyntaxError
	)
	d := NewDriver(bytes.NewReader(data),
		WithParserOptions(opts...),
		WithResultHandler(func(r Result) {
			if r.Err != nil {
				errs = append(errs, r.Err)
				return
			}
			nodes = append(nodes, r.Node)
		}),
	)
	// Reading from memory and writing to io.Discard cannot fail.
	_, _ = d.Run(context.Background())
	return nodes, errs
}

// Tokenize returns every token in data up to, but not including, EOF.
func Tokenize(data []byte) []Token {
	var toks []Token
	l := NewLexer(data)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}
