package kaleido

import "fmt"

// SyntaxError 描述一个顶层结构中遇到的第一个语法错误以及引发它的 token.
type SyntaxError struct {
	Msg   string
	Token Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d: %s (found %s)", e.Token.Line, e.Token.Column, e.Msg, e.Token.summary())
}

// Fixed diagnostic texts.
const (
	msgUnknownToken     = "unknown token when expecting an expression"
	msgArgListDelimiter = "expected ')' or ',' in argument list"
	msgFuncName         = "expected function name in prototype"
	msgProtoLParen      = "expected '(' in prototype"
	msgParamIdent       = "expected identifier in parameter list"
	msgParamDelimiter   = "expected ')' or ',' in parameter list"
	msgMalformedNumber  = "malformed number literal"
)
