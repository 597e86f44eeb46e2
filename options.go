package kaleido

import "fmt"

// OutputStyle defines the different rendering styles for an AST.
type OutputStyle int

const (
	// StyleSExpr renders a node on a single line as an s-expression,
	// e.g. `(def foo(x y) (+ x y))`. It is the default style.
	StyleSExpr OutputStyle = iota

	// StyleTree renders one node per line, indenting children by two spaces.
	StyleTree
)

const (
	// StyleDefault is an alias for StyleSExpr.
	StyleDefault = StyleSExpr
)

// ParseOutputStyle maps a style name as accepted on the command line.
func ParseOutputStyle(name string) (OutputStyle, error) {
	switch name {
	case "", "sexpr":
		return StyleSExpr, nil
	case "tree":
		return StyleTree, nil
	default:
		return StyleDefault, fmt.Errorf("unknown output style %q", name)
	}
}

// FormatOptions provides options for controlling the AST rendering.
type FormatOptions struct {
	Style OutputStyle
}
