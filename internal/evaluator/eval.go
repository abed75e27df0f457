package evaluator

import (
	"fmt"

	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/value"
)

// Evaluate reduces expr to a value.Value, seeding a fresh context stack
// from the engine's prelude. Calling Evaluate twice on the same engine and
// expression returns equal values (the engine and AST are both read-only).
func (e *Engine) Evaluate(expr ast.Expression) (value.Value, error) {
	ctx := newContext(e.prelude)
	return e.eval(expr, ctx)
}

func (e *Engine) eval(expr ast.Expression, ctx *context) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		v, ok := ctx.resolve(n.Name)
		if !ok {
			return value.Value{}, ctlerrors.NewEvaluateError(
				fmt.Sprintf("could not resolve identifier: %s", n.Name), n.NameSpan)
		}
		return v, nil

	case *ast.IntegerLiteral:
		return value.Int(n.Value), nil

	case *ast.DoubleLiteral:
		return value.Double(n.Value), nil

	case *ast.StringLiteral:
		return value.Str(n.Value), nil

	case *ast.OperatorExpr:
		return e.evalOperator(n, ctx)

	case *ast.ListExpr:
		return e.evalList(n, ctx)

	case *ast.ObjectExpr:
		return e.evalObject(n, ctx)

	default:
		return value.Value{}, ctlerrors.NewEvaluateError(
			fmt.Sprintf("unknown expression node type %T", expr), expr.Span())
	}
}

func (e *Engine) evalOperator(n *ast.OperatorExpr, ctx *context) (value.Value, error) {
	if n.IsUnary() {
		operand, err := e.eval(n.RHS, ctx)
		if err != nil {
			return value.Value{}, err
		}
		fn, ok := e.unaryOps[unaryKey{n.Op, operand.Type()}]
		if !ok {
			return value.Value{}, ctlerrors.NewEvaluateError(
				fmt.Sprintf("operator %s not defined for given types", n.Op), n.OpSpan)
		}
		return fn(operand)
	}

	// Evaluate lhs then rhs, each exactly once: a corrected rendition of
	// a drafted bug in the original where rhs was re-evaluated from lhs.
	lhs, err := e.eval(n.LHS, ctx)
	if err != nil {
		return value.Value{}, err
	}
	rhs, err := e.eval(n.RHS, ctx)
	if err != nil {
		return value.Value{}, err
	}
	fn, ok := e.binaryOps[binaryKey{n.Op, lhs.Type(), rhs.Type()}]
	if !ok {
		return value.Value{}, ctlerrors.NewEvaluateError(
			fmt.Sprintf("operator %s not defined for given types", n.Op), n.OpSpan)
	}
	return fn(lhs, rhs)
}

func (e *Engine) evalList(n *ast.ListExpr, ctx *context) (value.Value, error) {
	out := make(value.List, len(n.Elements))
	for i, elem := range n.Elements {
		v, err := e.eval(elem, ctx)
		if err != nil {
			return value.Value{}, err
		}
		out[i] = v
	}
	return value.New(out), nil
}

func (e *Engine) evalObject(n *ast.ObjectExpr, ctx *context) (value.Value, error) {
	keys := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		kv, err := e.eval(k, ctx)
		if err != nil {
			return value.Value{}, err
		}
		s, ok := value.As[string](kv)
		if !ok {
			return value.Value{}, ctlerrors.NewEvaluateError("key is not a string", k.Span())
		}
		keys[i] = s
	}

	obj := value.NewObject()
	ctx.push(obj)
	defer ctx.pop()

	for i, valueExpr := range n.Values {
		v, err := e.eval(valueExpr, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if obj.Has(keys[i]) {
			return value.Value{}, ctlerrors.NewEvaluateError(
				fmt.Sprintf("duplicate key: %s", keys[i]), n.Keys[i].Span())
		}
		obj.Insert(keys[i], v)
	}
	return value.New(obj), nil
}
