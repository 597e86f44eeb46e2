package kaleido

import (
	"bytes"
	"strconv"
)

// AnonExprName 是包装顶层裸表达式的匿名函数原型所使用的保留名称.
const AnonExprName = "__anon_expr"

// Node 是AST中所有节点的基础接口.
type Node interface {
	String() string
	Format(w *bytes.Buffer, indent string, opts FormatOptions)
}

// Expr 代表一个表达式. 节点种类是封闭的: Number, Variable, Binary, Call, Function.
type Expr interface {
	Node
	exprNode()
}

// nodeString renders n with the default single-line style.
func nodeString(n Node) string {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()
	n.Format(buf, "", FormatOptions{Style: StyleSExpr})
	return buf.String()
}

// Number 表示一个数字字面量.
type Number struct {
	Token Token
	Value float64
}

func (n *Number) exprNode()      {}
func (n *Number) String() string { return nodeString(n) }
func (n *Number) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Number ")
	}
	w.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
}

// Variable 表示对一个名字的引用. 名字不会在符号表中检查.
type Variable struct {
	Token Token
	Name  string
}

func (v *Variable) exprNode()      {}
func (v *Variable) String() string { return nodeString(v) }
func (v *Variable) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Variable ")
	}
	w.WriteString(v.Name)
}

// Binary 表示一个二元运算, 如 `a + b`.
type Binary struct {
	Token Token // the operator token
	Op    byte
	LHS   Expr
	RHS   Expr
}

func (b *Binary) exprNode()      {}
func (b *Binary) String() string { return nodeString(b) }
func (b *Binary) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Binary ")
		w.WriteByte(b.Op)
		w.WriteString("\n")
		b.LHS.Format(w, indent+"  ", opts)
		w.WriteString("\n")
		b.RHS.Format(w, indent+"  ", opts)
		return
	}
	w.WriteString("(")
	w.WriteByte(b.Op)
	w.WriteString(" ")
	b.LHS.Format(w, "", opts)
	w.WriteString(" ")
	b.RHS.Format(w, "", opts)
	w.WriteString(")")
}

// Call 表示一个函数调用, 如 `foo(1, x)`.
type Call struct {
	Token  Token // the callee identifier
	Callee string
	Args   []Expr
}

func (c *Call) exprNode()      {}
func (c *Call) String() string { return nodeString(c) }
func (c *Call) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Call ")
		w.WriteString(c.Callee)
		for _, arg := range c.Args {
			w.WriteString("\n")
			arg.Format(w, indent+"  ", opts)
		}
		return
	}
	w.WriteString("(call ")
	w.WriteString(c.Callee)
	for _, arg := range c.Args {
		w.WriteString(" ")
		arg.Format(w, "", opts)
	}
	w.WriteString(")")
}

// Prototype 是函数定义和 extern 声明共用的签名: 名称加参数名列表.
type Prototype struct {
	Token  Token // the function name
	Name   string
	Params []string
}

func (p *Prototype) String() string { return nodeString(p) }
func (p *Prototype) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Prototype ")
	}
	w.WriteString(p.Name)
	w.WriteString("(")
	for i, param := range p.Params {
		if i > 0 {
			w.WriteString(" ")
		}
		w.WriteString(param)
	}
	w.WriteString(")")
}

// IsAnonymous reports whether p is the wrapper of a top-level expression.
func (p *Prototype) IsAnonymous() bool {
	return p.Name == AnonExprName && len(p.Params) == 0
}

// Function 表示一个带函数体的函数, 由 `def` 定义或由顶层表达式合成.
type Function struct {
	Proto *Prototype
	Body  Expr
}

func (f *Function) exprNode()      {}
func (f *Function) String() string { return nodeString(f) }
func (f *Function) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if opts.Style == StyleTree {
		w.WriteString(indent)
		w.WriteString("Function\n")
		f.Proto.Format(w, indent+"  ", opts)
		w.WriteString("\n")
		f.Body.Format(w, indent+"  ", opts)
		return
	}
	w.WriteString("(def ")
	f.Proto.Format(w, "", opts)
	w.WriteString(" ")
	f.Body.Format(w, "", opts)
	w.WriteString(")")
}
