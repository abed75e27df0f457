// Package printer renders a parsed AST as the Lisp-style form spec.md's
// end-to-end scenarios use for expected output (e.g. "(plus 1 (times 2
// 3))"). It is the canonical pretty-printer the CLI harness and the test
// suite's snapshot assertions use; ast.Node.String implements the same
// shape as a quick, dependency-free fallback but this package is
// authoritative.
package printer

import (
	"fmt"
	"strings"

	"github.com/m-ou-se/configtaal/internal/ast"
)

// Print renders expr as a single-line Lisp-style form.
func Print(expr ast.Expression) string {
	var sb strings.Builder
	write(&sb, expr)
	return sb.String()
}

func write(sb *strings.Builder, expr ast.Expression) {
	switch n := expr.(type) {
	case *ast.Identifier:
		sb.WriteString(n.Name)

	case *ast.IntegerLiteral:
		fmt.Fprintf(sb, "%d", n.Value)

	case *ast.DoubleLiteral:
		fmt.Fprintf(sb, "%g", n.Value)

	case *ast.StringLiteral:
		fmt.Fprintf(sb, "%q", n.Value)

	case *ast.OperatorExpr:
		sb.WriteByte('(')
		sb.WriteString(n.Op.String())
		if !n.IsUnary() {
			sb.WriteByte(' ')
			write(sb, n.LHS)
		}
		sb.WriteByte(' ')
		write(sb, n.RHS)
		sb.WriteByte(')')

	case *ast.ListExpr:
		sb.WriteByte('[')
		for i, e := range n.Elements {
			if i > 0 {
				sb.WriteByte(' ')
			}
			write(sb, e)
		}
		sb.WriteByte(']')

	case *ast.ObjectExpr:
		sb.WriteByte('{')
		for i := range n.Keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(n.Keys[i].Value)
			sb.WriteString(" = ")
			write(sb, n.Values[i])
		}
		sb.WriteByte('}')

	default:
		fmt.Fprintf(sb, "<unknown %T>", expr)
	}
}
