package kaleido

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
)

// Benchmark data - a few hundred definitions, externs and expressions.
var benchmarkSource = func() []byte {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, "def f%d(x y z) x*y + z - f%d(x, 1.5, y*2);\n", i, i+1)
		fmt.Fprintf(&b, "extern ext%d(a b);\n", i)
		fmt.Fprintf(&b, "f%d(%d, 2, ext%d(3, 4.25));\n", i, i, i)
	}
	return []byte(b.String())
}()

// BenchmarkLexer measures the performance of tokenizing in-memory source.
func BenchmarkLexer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewLexer(benchmarkSource)
		for {
			tok := l.NextToken()
			if tok.Type == EOF {
				break
			}
		}
	}
}

// BenchmarkStreamLexer measures the performance of tokenizing from an io.Reader.
func BenchmarkStreamLexer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewStreamLexer(bytes.NewReader(benchmarkSource))
		for {
			tok := l.NextToken()
			if tok.Type == EOF {
				break
			}
		}
	}
}

// BenchmarkDriver measures the end-to-end performance of lexing and parsing.
func BenchmarkDriver(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d := NewDriver(bytes.NewReader(benchmarkSource))
		if _, err := d.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
