package kaleido

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// This file contains the stream-based lexer.

// StreamLexer 是一个从 io.Reader 逐字节读取数据的词法分析器,
// 适用于交互式输入 (例如标准输入).
type StreamLexer struct {
	r      *bufio.Reader
	ch     byte
	atEOF  bool
	err    error
	line   int
	column int
	// Reusable buffer for building literals.
	literalBuf bytes.Buffer
}

// NewStreamLexer creates a new stream-based lexer.
// The first byte is read lazily, so constructing a lexer over a terminal
// does not block.
func NewStreamLexer(r io.Reader) *StreamLexer {
	return &StreamLexer{
		r:    bufio.NewReader(r),
		ch:   ' ',
		line: 1,
	}
}

// Err returns the first read error other than io.EOF. The lexer reports
// such an error as end of input.
func (l *StreamLexer) Err() error {
	return l.err
}

func (l *StreamLexer) readChar() {
	if l.atEOF {
		return
	}
	var err error
	l.ch, err = l.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.ch = 0
		l.atEOF = true
	}
	l.column++
}

func (l *StreamLexer) NextToken() Token {
	l.skipWhitespace()
	line, col := l.line, l.column
	switch {
	case l.atEOF:
		return Token{Type: EOF, Literal: []byte{}, Line: line, Column: col}
	case isLetter(l.ch):
		literal := l.readWhile(isAlnum)
		return Token{Type: LookupIdentifier(literal), Literal: literal, Line: line, Column: col}
	case isNumberChar(l.ch):
		literal := l.readWhile(isNumberChar)
		num, _ := leadingFloat(literal)
		return Token{Type: NUMBER, Literal: literal, Num: num, Line: line, Column: col}
	}
	tok := Token{Type: CHAR, Literal: singleCharByteSlices[l.ch], Line: line, Column: col}
	// 不预读下一个字节: 交互模式下, 读取 ';' 之后不应阻塞等待新的输入行.
	l.ch = ' '
	return tok
}

func (l *StreamLexer) skipWhitespace() {
	for !l.atEOF && isSpace(l.ch) {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func (l *StreamLexer) readWhile(accept func(byte) bool) []byte {
	l.literalBuf.Reset()
	for !l.atEOF && accept(l.ch) {
		l.literalBuf.WriteByte(l.ch)
		l.readChar()
	}
	c := make([]byte, l.literalBuf.Len())
	copy(c, l.literalBuf.Bytes())
	return c
}
