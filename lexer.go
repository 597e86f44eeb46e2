package kaleido

import (
	"strconv"
)

// Lexer 是基于内存字节切片的词法分析器.
type Lexer struct {
	input        []byte // 使用 []byte 避免复制
	position     int
	readPosition int
	ch           byte
	atEOF        bool
	line         int
	column       int
}

func NewLexer(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.atEOF = true
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	if l.readPosition <= len(l.input) {
		l.readPosition++
		l.column++
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	line, col := l.line, l.column
	switch {
	case l.atEOF:
		return Token{Type: EOF, Literal: []byte{}, Line: line, Column: col}
	case isLetter(l.ch):
		literal := l.readIdentifier()
		return Token{Type: LookupIdentifier(literal), Literal: literal, Line: line, Column: col}
	case isNumberChar(l.ch):
		literal := l.readNumber()
		num, _ := leadingFloat(literal)
		return Token{Type: NUMBER, Literal: literal, Num: num, Line: line, Column: col}
	}
	tok := Token{Type: CHAR, Literal: singleCharByteSlices[l.ch], Line: line, Column: col}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF && isSpace(l.ch) {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() []byte {
	position := l.position
	for !l.atEOF && isAlnum(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() []byte {
	position := l.position
	for !l.atEOF && isNumberChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// singleCharByteSlices 避免为每个单字符 token 分配新的切片.
var singleCharByteSlices [256][]byte

func init() {
	for i := range singleCharByteSlices {
		singleCharByteSlices[i] = []byte{byte(i)}
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '.'
}

// leadingFloat converts the longest prefix of lit shaped like digits[.digits]
// and reports whether that prefix covered all of lit. A prefix without any
// digit converts to 0, matching strtod.
func leadingFloat(lit []byte) (float64, bool) {
	end, digits, dot := 0, 0, false
	for end < len(lit) {
		c := lit[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else if isDigit(c) {
			digits++
		} else {
			break
		}
		end++
	}
	if digits == 0 {
		return 0, false
	}
	// A range error still yields ±Inf, which is what strtod returns too.
	v, _ := strconv.ParseFloat(string(lit[:end]), 64)
	return v, end == len(lit)
}
