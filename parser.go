package kaleido

// Parser 是一个单 token 前瞻, 无回溯的递归下降解析器.
// 它与词法分析器共享唯一的 "当前 token" 游标.
//
// Grammar:
//
//	toplevel   = definition | extern | expression
//	definition = "def" prototype expression
//	extern     = "extern" prototype
//	prototype  = IDENT "(" (IDENT ((",")? IDENT)*)? ")"
//	expression = primary (("+" | "-" | "*") primary)*
//	primary    = IDENT | IDENT "(" (expression ("," expression)*)? ")" | NUMBER
//
// Operators share one precedence level and fold to the left.
type Parser struct {
	t             Tokenizer
	curToken      Token
	primed        bool
	err           *SyntaxError
	strictNumbers bool
}

type ParserOption func(*Parser)

// WithStrictNumbers makes a numeric literal that the lenient conversion would
// truncate (e.g. `1.2.3`) a syntax error.
func WithStrictNumbers() ParserOption {
	return func(p *Parser) {
		p.strictNumbers = true
	}
}

// NewParser returns a parser reading from t. No token is read until the
// parser is first asked for one.
func NewParser(t Tokenizer, opts ...ParserOption) *Parser {
	p := &Parser{t: t}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.t.NextToken()
}

func (p *Parser) prime() {
	if !p.primed {
		p.primed = true
		p.nextToken()
	}
}

// Current returns the token under the cursor.
func (p *Parser) Current() Token {
	p.prime()
	return p.curToken
}

// Advance moves the cursor one token forward and returns the new current token.
func (p *Parser) Advance() Token {
	p.prime()
	p.nextToken()
	return p.curToken
}

// begin starts a new top-level form.
func (p *Parser) begin() {
	p.prime()
	p.err = nil
}

// fail records msg against the current token unless the form already failed.
func (p *Parser) fail(msg string) {
	p.failAt(msg, p.curToken)
}

func (p *Parser) failAt(msg string, tok Token) {
	if p.err == nil {
		p.err = &SyntaxError{Msg: msg, Token: tok}
	}
}

// ParseDefinition parses `def prototype expression`.
func (p *Parser) ParseDefinition() (*Function, error) {
	p.begin()
	if p.curToken.Type != DEF {
		p.fail("expected 'def'")
		return nil, p.err
	}
	p.nextToken() // eat 'def'
	proto := p.parsePrototype()
	if proto == nil {
		return nil, p.err
	}
	body := p.parseExpression()
	if body == nil {
		return nil, p.err
	}
	return &Function{Proto: proto, Body: body}, nil
}

// ParseExtern parses `extern prototype`.
func (p *Parser) ParseExtern() (*Prototype, error) {
	p.begin()
	if p.curToken.Type != EXTERN {
		p.fail("expected 'extern'")
		return nil, p.err
	}
	p.nextToken() // eat 'extern'
	proto := p.parsePrototype()
	if proto == nil {
		return nil, p.err
	}
	return proto, nil
}

// ParseTopLevelExpr parses a bare expression and wraps it in an anonymous
// function with no parameters.
func (p *Parser) ParseTopLevelExpr() (*Function, error) {
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	proto := &Prototype{Name: AnonExprName, Params: []string{}}
	return &Function{Proto: proto, Body: body}, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (Expr, error) {
	p.begin()
	e := p.parseExpression()
	if e == nil {
		return nil, p.err
	}
	return e, nil
}

func (p *Parser) parseExpression() Expr {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	return p.parseBinOpRHS(lhs)
}

func (p *Parser) parsePrimary() Expr {
	switch p.curToken.Type {
	case IDENT:
		return p.parseIdentOrCall()
	case NUMBER:
		return p.parseNumber()
	default:
		p.fail(msgUnknownToken)
		return nil
	}
}

func (p *Parser) parseIdentOrCall() Expr {
	tok := p.curToken
	name := string(tok.Literal)
	p.nextToken()

	if !p.curToken.Is('(') {
		return &Variable{Token: tok, Name: name}
	}
	p.nextToken() // eat '('

	args := make([]Expr, 0)
	if !p.curToken.Is(')') {
		for {
			arg := p.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)

			if p.curToken.Is(')') {
				break
			}
			if !p.curToken.Is(',') {
				p.fail(msgArgListDelimiter)
				return nil
			}
			p.nextToken()
		}
	}
	p.nextToken() // eat ')'

	return &Call{Token: tok, Callee: name, Args: args}
}

func (p *Parser) parseNumber() Expr {
	tok := p.curToken
	if p.strictNumbers {
		if _, ok := leadingFloat(tok.Literal); !ok {
			p.fail(msgMalformedNumber)
			return nil
		}
	}
	p.nextToken() // eat the number
	return &Number{Token: tok, Value: tok.Num}
}

func isBinaryOp(tok Token) bool {
	switch tok.Char() {
	case '+', '-', '*':
		return true
	}
	return false
}

// parseBinOpRHS folds `op primary` pairs onto lhs. The right operand is a
// single primary, so `1+2*3` is `(1+2)*3`.
func (p *Parser) parseBinOpRHS(lhs Expr) Expr {
	for isBinaryOp(p.curToken) {
		opTok := p.curToken
		p.nextToken() // eat the operator

		rhs := p.parsePrimary()
		if rhs == nil {
			return nil
		}
		lhs = &Binary{Token: opTok, Op: opTok.Char(), LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parsePrototype() *Prototype {
	if p.curToken.Type != IDENT {
		p.fail(msgFuncName)
		return nil
	}
	tok := p.curToken
	p.nextToken() // eat name

	if !p.curToken.Is('(') {
		p.fail(msgProtoLParen)
		return nil
	}
	p.nextToken() // eat '('

	params := make([]string, 0)
	if !p.curToken.Is(')') {
		for {
			if p.curToken.Type != IDENT {
				p.fail(msgParamIdent)
				return nil
			}
			paramTok := p.curToken
			param := p.parseIdentOrCall()
			if param == nil {
				return nil
			}
			v, ok := param.(*Variable)
			if !ok {
				p.failAt(msgParamIdent, paramTok)
				return nil
			}
			params = append(params, v.Name)

			if p.curToken.Is(')') {
				break
			}
			if p.curToken.Is(',') {
				p.nextToken()
				continue
			}
			if p.curToken.Type != IDENT {
				p.fail(msgParamDelimiter)
				return nil
			}
		}
	}
	p.nextToken() // eat ')'

	return &Prototype{Token: tok, Name: string(tok.Literal), Params: params}
}
