package kaleido

import (
	"bytes"
	"fmt"
	"strconv"
)

type TokenType string

// Token 是词法分析器产出的一个已分类的词法单元.
type Token struct {
	Type    TokenType
	Literal []byte  // 标识符文本, 数字文本, 或单个字符
	Num     float64 // 仅对 NUMBER 有效
	Line    int
	Column  int
}

const (
	EOF    TokenType = "EOF"
	DEF    TokenType = "DEF"
	EXTERN TokenType = "EXTERN"
	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"
	// CHAR covers every other byte: operators, punctuation and anything unrecognized.
	CHAR TokenType = "CHAR"
)

var (
	defKeyword    = []byte("def")
	externKeyword = []byte("extern")
)

// LookupIdentifier 检查 ident 是否是关键字 (区分大小写).
func LookupIdentifier(ident []byte) TokenType {
	if bytes.Equal(ident, defKeyword) {
		return DEF
	}
	if bytes.Equal(ident, externKeyword) {
		return EXTERN
	}
	return IDENT
}

// Is reports whether t is the single-character token c.
func (t Token) Is(c byte) bool {
	return t.Type == CHAR && len(t.Literal) == 1 && t.Literal[0] == c
}

// Char returns the byte of a CHAR token, or 0 for any other kind.
func (t Token) Char() byte {
	if t.Type != CHAR || len(t.Literal) == 0 {
		return 0
	}
	return t.Literal[0]
}

func (t Token) String() string {
	return fmt.Sprintf("Line:%d, Col:%d, Type:%s, Literal:`%s`", t.Line, t.Column, t.Type, string(t.Literal))
}

// Describe renders the token classification the way the diagnostics dump it.
func (t Token) Describe() string {
	switch t.Type {
	case DEF:
		return "token type: def"
	case EXTERN:
		return "token type: extern"
	case IDENT:
		return "token type: ident. " + string(t.Literal)
	case NUMBER:
		return "token type: number. " + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case EOF:
		return "token type: eof"
	default:
		return "unknown token type: " + string(t.Literal)
	}
}

// summary is the short form used inside error messages.
func (t Token) summary() string {
	switch t.Type {
	case DEF:
		return "keyword 'def'"
	case EXTERN:
		return "keyword 'extern'"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	case NUMBER:
		return fmt.Sprintf("number %s", t.Literal)
	case EOF:
		return "end of input"
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}
