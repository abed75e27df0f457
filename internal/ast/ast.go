// Package ast defines the immutable expression tree a parse produces. Nodes
// are shared by reference, read-only, and carry no cycles: the evaluator
// only ever walks down from the root the parser returned.
package ast

import (
	"fmt"
	"strings"

	"github.com/m-ou-se/configtaal/internal/operator"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

// Node is the common interface every expression node satisfies.
type Node interface {
	// Span returns the node's own source span: an operator's is its
	// operator token, an identifier's is its name, a literal's is its
	// source range.
	Span() tracker.Span

	// String renders a debug form of the node. The canonical Lisp-style
	// pretty-printer used by the CLI and the test suite lives in
	// pkg/printer; this is a quick, dependency-free fallback akin to
	// fmt.Stringer on a parser AST.
	String() string
}

// Expression is the marker interface for every node kind CTL has; there is
// no separate statement hierarchy, since CTL is expression-only.
type Expression interface {
	Node
	expressionNode()
}

// Identifier is a bare name looked up against the context stack at
// evaluation time.
type Identifier struct {
	Name     string
	NameSpan tracker.Span
}

func (i *Identifier) expressionNode()         {}
func (i *Identifier) Span() tracker.Span      { return i.NameSpan }
func (i *Identifier) String() string          { return i.Name }

// IntegerLiteral is a 64-bit signed integer literal.
type IntegerLiteral struct {
	Value   int64
	LitSpan tracker.Span
}

func (n *IntegerLiteral) expressionNode()    {}
func (n *IntegerLiteral) Span() tracker.Span { return n.LitSpan }
func (n *IntegerLiteral) String() string     { return fmt.Sprintf("%d", n.Value) }

// DoubleLiteral is an IEEE-754 64-bit floating point literal.
type DoubleLiteral struct {
	Value   float64
	LitSpan tracker.Span
}

func (n *DoubleLiteral) expressionNode()    {}
func (n *DoubleLiteral) Span() tracker.Span { return n.LitSpan }
func (n *DoubleLiteral) String() string     { return fmt.Sprintf("%g", n.Value) }

// StringLiteral is a decoded string literal. Value may be a zero-copy
// substring of the original source (no escapes present) or a buffer built
// by the tracker's StringBuilder (escapes present); either way LitSpan
// covers the full `"..."` source range, quotes included.
type StringLiteral struct {
	Value   string
	LitSpan tracker.Span
}

func (n *StringLiteral) expressionNode()    {}
func (n *StringLiteral) Span() tracker.Span { return n.LitSpan }
func (n *StringLiteral) String() string     { return fmt.Sprintf("%q", n.Value) }

// OperatorExpr represents both unary and binary operator application. A
// unary operator has LHS == nil; Parenthesized is true iff this node was
// the immediate result of a `(...)` form, which the precedence-climbing
// parser consults to decide whether it may descend past this node while
// re-splicing the tree.
type OperatorExpr struct {
	Op            operator.Operator
	OpSpan        tracker.Span
	LHS           Expression // nil for unary operators
	RHS           Expression // always non-nil
	Parenthesized bool
}

func (n *OperatorExpr) expressionNode()    {}
func (n *OperatorExpr) Span() tracker.Span { return n.OpSpan }

// IsUnary reports whether this is a prefix operator application.
func (n *OperatorExpr) IsUnary() bool { return n.LHS == nil }

func (n *OperatorExpr) String() string {
	if n.IsUnary() {
		return fmt.Sprintf("(%s %s)", n.Op, n.RHS.String())
	}
	return fmt.Sprintf("(%s %s %s)", n.Op, n.LHS.String(), n.RHS.String())
}

// ListExpr is an ordered sequence of element expressions, `[a, b, c]`.
type ListExpr struct {
	Elements []Expression
	ListSpan tracker.Span
}

func (n *ListExpr) expressionNode()    {}
func (n *ListExpr) Span() tracker.Span { return n.ListSpan }

func (n *ListExpr) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ObjectExpr is an ordered key->value aggregate, `{a = 1, b = 2}`. Keys and
// Values are parallel slices of equal length; every Keys entry is a
// *StringLiteral, even though object-literal syntax only ever produces bare
// identifier keys (arbitrary string-expression keys aren't source syntax).
type ObjectExpr struct {
	Keys       []*StringLiteral
	Values     []Expression
	ObjectSpan tracker.Span
}

func (n *ObjectExpr) expressionNode()    {}
func (n *ObjectExpr) Span() tracker.Span { return n.ObjectSpan }

func (n *ObjectExpr) String() string {
	parts := make([]string, len(n.Keys))
	for i := range n.Keys {
		parts[i] = fmt.Sprintf("%s = %s", n.Keys[i].Value, n.Values[i].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
