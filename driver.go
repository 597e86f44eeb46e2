package kaleido

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// FormKind classifies a top-level form.
type FormKind string

const (
	FormDefinition FormKind = "definition"
	FormExtern     FormKind = "extern"
	FormExpression FormKind = "expression"
	FormError      FormKind = "error"
)

// notice returns the success line printed for a form.
func (k FormKind) notice() string {
	switch k {
	case FormDefinition:
		return "parsed definition"
	case FormExtern:
		return "parsed extern"
	case FormExpression:
		return "parsed top level expression"
	default:
		return "parsed " + string(k)
	}
}

// Result is the outcome of one top-level form. Exactly one of Node and Err is set.
type Result struct {
	Kind FormKind
	Node Node
	Err  *SyntaxError
}

// Stats counts the forms seen by a Driver.
type Stats struct {
	Definitions int
	Externs     int
	Expressions int
	Errors      int
}

// Driver 是顶层读取循环: 按首个 token 分派到定义, extern 或表达式的解析,
// 报告结果, 并在出错时跳过一个 token 后继续.
type Driver struct {
	lexer      *StreamLexer
	parser     *Parser
	out        io.Writer
	diag       io.Writer
	prompt     string
	jsonOutput bool
	verbose    bool
	format     FormatOptions
	parserOpts []ParserOption
	onResult   func(Result)
	enc        *Encoder
	stats      Stats
}

type DriverOption func(*Driver)

// WithPrompt sets the text printed before each top-level form is read.
func WithPrompt(prompt string) DriverOption {
	return func(d *Driver) {
		d.prompt = prompt
	}
}

// WithOutput sets the writer for JSON results, ASTs and token dumps.
func WithOutput(w io.Writer) DriverOption {
	return func(d *Driver) {
		d.out = w
	}
}

// WithDiagnostics sets the writer for prompts, notices and error messages.
func WithDiagnostics(w io.Writer) DriverOption {
	return func(d *Driver) {
		d.diag = w
	}
}

// WithJSON switches result reporting to one JSON object per line.
func WithJSON(enabled bool) DriverOption {
	return func(d *Driver) {
		d.jsonOutput = enabled
	}
}

// WithVerbose prints the AST of every successfully parsed form.
func WithVerbose(enabled bool) DriverOption {
	return func(d *Driver) {
		d.verbose = enabled
	}
}

func WithFormatOptions(opts FormatOptions) DriverOption {
	return func(d *Driver) {
		d.format = opts
	}
}

func WithParserOptions(opts ...ParserOption) DriverOption {
	return func(d *Driver) {
		d.parserOpts = append(d.parserOpts, opts...)
	}
}

// WithResultHandler registers fn to be called with every result, after it is reported.
func WithResultHandler(fn func(Result)) DriverOption {
	return func(d *Driver) {
		d.onResult = fn
	}
}

func NewDriver(r io.Reader, opts ...DriverOption) *Driver {
	d := &Driver{
		out:  io.Discard,
		diag: io.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lexer = NewStreamLexer(r)
	d.parser = NewParser(d.lexer, d.parserOpts...)
	d.enc = NewEncoder(d.out)
	return d
}

// Run parses top-level forms until end of input. Syntax errors are reported
// and skipped; the returned error is non-nil only for a read failure, a
// failed write, or ctx being done.
func (d *Driver) Run(ctx context.Context) (Stats, error) {
	for {
		if err := ctx.Err(); err != nil {
			return d.stats, err
		}
		if d.prompt != "" {
			if _, err := fmt.Fprint(d.diag, d.prompt); err != nil {
				return d.stats, fmt.Errorf("writing prompt: %w", err)
			}
		}

		var err error
		tok := d.parser.Current()
		switch {
		case tok.Type == EOF:
			if lerr := d.lexer.Err(); lerr != nil {
				return d.stats, fmt.Errorf("reading input: %w", lerr)
			}
			return d.stats, nil
		case tok.Is(';'):
			d.parser.Advance()
		case tok.Type == DEF:
			fn, perr := d.parser.ParseDefinition()
			err = d.handle(FormDefinition, fn, perr)
		case tok.Type == EXTERN:
			proto, perr := d.parser.ParseExtern()
			err = d.handle(FormExtern, proto, perr)
		default:
			fn, perr := d.parser.ParseTopLevelExpr()
			err = d.handle(FormExpression, fn, perr)
		}
		if err != nil {
			return d.stats, err
		}
	}
}

// handle reports one form. After a syntax error is reported the offending
// token is skipped; on a stream the skip blocks until more input arrives.
func (d *Driver) handle(kind FormKind, node Node, perr error) error {
	var res Result
	if perr != nil {
		var synErr *SyntaxError
		if !errors.As(perr, &synErr) {
			return perr
		}
		res = Result{Kind: FormError, Err: synErr}
		d.stats.Errors++
	} else {
		res = Result{Kind: kind, Node: node}
		switch kind {
		case FormDefinition:
			d.stats.Definitions++
		case FormExtern:
			d.stats.Externs++
		case FormExpression:
			d.stats.Expressions++
		}
	}

	if err := d.report(res); err != nil {
		return err
	}
	if d.onResult != nil {
		d.onResult(res)
	}
	if res.Err != nil {
		d.parser.Advance()
	}
	return nil
}

func (d *Driver) report(res Result) error {
	if d.jsonOutput {
		return d.enc.EncodeResult(res)
	}
	if res.Err != nil {
		if _, err := fmt.Fprintf(d.diag, "error: %s\n%s\n", res.Err.Error(), res.Err.Token.Describe()); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(d.diag, res.Kind.notice()); err != nil {
		return fmt.Errorf("writing diagnostic: %w", err)
	}
	if d.verbose {
		if _, err := fmt.Fprintf(d.out, "%s\n", Format(res.Node, d.format)); err != nil {
			return fmt.Errorf("writing ast: %w", err)
		}
	}
	return nil
}

// DumpTokens prints the classification of every token until end of input,
// instead of parsing.
func (d *Driver) DumpTokens(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok := d.lexer.NextToken()
		if tok.Type == EOF {
			if lerr := d.lexer.Err(); lerr != nil {
				return fmt.Errorf("reading input: %w", lerr)
			}
			return nil
		}
		if d.jsonOutput {
			if err := d.enc.EncodeToken(tok); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(d.out, tok.Describe()); err != nil {
			return fmt.Errorf("writing token: %w", err)
		}
	}
}
