package kaleido

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// jsonNode is the tagged JSON shape of an AST node.
type jsonNode struct {
	Kind   string      `json:"kind"`
	Value  *float64    `json:"value,omitzero"`
	Name   string      `json:"name,omitzero"`
	Op     string      `json:"op,omitzero"`
	LHS    *jsonNode   `json:"lhs,omitzero"`
	RHS    *jsonNode   `json:"rhs,omitzero"`
	Callee string      `json:"callee,omitzero"`
	Args   []*jsonNode `json:"args,omitzero"`
	Params []string    `json:"params,omitzero"`
	Proto  *jsonNode   `json:"proto,omitzero"`
	Body   *jsonNode   `json:"body,omitzero"`
	Line   int         `json:"line,omitzero"`
	Column int         `json:"column,omitzero"`
}

type jsonToken struct {
	Type    TokenType `json:"type"`
	Literal string    `json:"literal"`
	Value   *float64  `json:"value,omitzero"`
	Line    int       `json:"line"`
	Column  int       `json:"column"`
}

type jsonError struct {
	Message string    `json:"message"`
	Token   jsonToken `json:"token"`
}

type jsonResult struct {
	Kind  FormKind   `json:"kind"`
	Node  *jsonNode  `json:"node,omitzero"`
	Error *jsonError `json:"error,omitzero"`
}

func toJSONNode(n Node) *jsonNode {
	switch n := n.(type) {
	case *Number:
		v := n.Value
		return &jsonNode{Kind: "number", Value: &v, Line: n.Token.Line, Column: n.Token.Column}
	case *Variable:
		return &jsonNode{Kind: "variable", Name: n.Name, Line: n.Token.Line, Column: n.Token.Column}
	case *Binary:
		return &jsonNode{
			Kind:   "binary",
			Op:     string(n.Op),
			LHS:    toJSONNode(n.LHS),
			RHS:    toJSONNode(n.RHS),
			Line:   n.Token.Line,
			Column: n.Token.Column,
		}
	case *Call:
		args := make([]*jsonNode, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, toJSONNode(arg))
		}
		return &jsonNode{Kind: "call", Callee: n.Callee, Args: args, Line: n.Token.Line, Column: n.Token.Column}
	case *Prototype:
		params := n.Params
		if params == nil {
			params = []string{}
		}
		return &jsonNode{Kind: "prototype", Name: n.Name, Params: params, Line: n.Token.Line, Column: n.Token.Column}
	case *Function:
		return &jsonNode{Kind: "function", Proto: toJSONNode(n.Proto), Body: toJSONNode(n.Body)}
	default:
		return nil
	}
}

func toJSONToken(t Token) jsonToken {
	jt := jsonToken{Type: t.Type, Literal: string(t.Literal), Line: t.Line, Column: t.Column}
	if t.Type == NUMBER {
		v := t.Num
		jt.Value = &v
	}
	return jt
}

// MarshalNode returns the JSON encoding of an AST node.
func MarshalNode(n Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot marshal nil node")
	}
	return json.Marshal(toJSONNode(n))
}

// Encoder 将解析结果和 token 以每行一个 JSON 对象的形式写入输出流.
type Encoder struct {
	enc *jsontext.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: jsontext.NewEncoder(w)}
}

// EncodeResult writes one parse result.
func (e *Encoder) EncodeResult(r Result) error {
	jr := jsonResult{Kind: r.Kind}
	if r.Err != nil {
		jr.Error = &jsonError{Message: r.Err.Msg, Token: toJSONToken(r.Err.Token)}
	} else if r.Node != nil {
		jr.Node = toJSONNode(r.Node)
	}
	if err := json.MarshalEncode(e.enc, jr); err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	return nil
}

// EncodeToken writes one token.
func (e *Encoder) EncodeToken(t Token) error {
	if err := json.MarshalEncode(e.enc, toJSONToken(t)); err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	return nil
}
