package kaleido

// Tokenizer 是一个对词法分析器行为进行抽象的接口.
// 基于字节切片的 Lexer 和基于流的 StreamLexer 都实现了此接口,
// 这使得解析器(Parser)可以无差别地使用它们.
type Tokenizer interface {
	NextToken() Token
}
