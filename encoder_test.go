package kaleido

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
)

func TestMarshalNode(t *testing.T) {
	nodes, errs := ParseAll([]byte("def f(a) g() - a"))
	if len(errs) != 0 || len(nodes) != 1 {
		t.Fatalf("expected one node, got=%d nodes %v", len(nodes), errs)
	}
	data, err := MarshalNode(nodes[0])
	if err != nil {
		t.Fatalf("MarshalNode() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, data)
	}
	want := map[string]any{
		"kind": "function",
		"proto": map[string]any{
			"kind": "prototype", "name": "f", "params": []any{"a"},
			"line": float64(1), "column": float64(5),
		},
		"body": map[string]any{
			"kind": "binary", "op": "-", "line": float64(1), "column": float64(14),
			"lhs": map[string]any{
				"kind": "call", "callee": "g", "args": []any{},
				"line": float64(1), "column": float64(10),
			},
			"rhs": map[string]any{
				"kind": "variable", "name": "a", "line": float64(1), "column": float64(16),
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	if _, err := MarshalNode(nil); err == nil {
		t.Errorf("expected an error for a nil node")
	}
}

func TestEncoderWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	nodes, errs := ParseAll([]byte("0; foo(1"))
	if len(nodes) != 1 || len(errs) != 1 {
		t.Fatalf("expected one node and one error, got=%d, %d", len(nodes), len(errs))
	}
	if err := enc.EncodeResult(Result{Kind: FormExpression, Node: nodes[0]}); err != nil {
		t.Fatalf("EncodeResult() error: %v", err)
	}
	if err := enc.EncodeResult(Result{Kind: FormError, Err: errs[0]}); err != nil {
		t.Fatalf("EncodeResult() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got=%d:\n%s", len(lines), buf.String())
	}

	var first struct {
		Kind string `json:"kind"`
		Node struct {
			Body struct {
				Kind  string  `json:"kind"`
				Value float64 `json:"value"`
			} `json:"body"`
		} `json:"node"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0: %v", err)
	}
	if first.Kind != "expression" || first.Node.Body.Kind != "number" || first.Node.Body.Value != 0 {
		t.Errorf("line 0 wrong: %s", lines[0])
	}
	if !strings.Contains(lines[0], `"value":0`) {
		t.Errorf("a zero literal must keep its value: %s", lines[0])
	}

	var second struct {
		Kind  string `json:"kind"`
		Error struct {
			Message string `json:"message"`
			Token   struct {
				Type TokenType `json:"type"`
			} `json:"token"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if second.Kind != "error" || second.Error.Message != msgArgListDelimiter || second.Error.Token.Type != EOF {
		t.Errorf("line 1 wrong: %s", lines[1])
	}
}
