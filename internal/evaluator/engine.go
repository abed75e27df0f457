// Package evaluator walks a parsed AST against an Engine's dispatch tables
// to produce a value.Value, per spec §4.5. The engine itself is configured
// once (its preamble of built-in operators installed at construction, by
// registerDefaultPreamble) and is read-only thereafter: every Evaluate call
// allocates its own context stack, so concurrent calls against the same
// Engine are safe as long as the tracker backing their spans is.
package evaluator

import (
	"reflect"

	"github.com/m-ou-se/configtaal/internal/operator"
	"github.com/m-ou-se/configtaal/internal/value"
)

// BinaryFunc implements a binary operator for one pair of operand types.
type BinaryFunc func(lhs, rhs value.Value) (value.Value, error)

// UnaryFunc implements a unary operator for one operand type.
type UnaryFunc func(operand value.Value) (value.Value, error)

// Function implements a named function, looked up by name rather than by
// operator/type dispatch.
type Function func(args []value.Value) (value.Value, error)

type binaryKey struct {
	op       operator.Operator
	lhs, rhs reflect.Type
}

type unaryKey struct {
	op      operator.Operator
	operand reflect.Type
}

// Engine owns the three preamble dispatch tables described in spec §3
// ("Engine") plus the prelude: an ordered sequence of object frames pushed
// as the outermost frames of every evaluation's context stack.
type Engine struct {
	binaryOps map[binaryKey]BinaryFunc
	unaryOps  map[unaryKey]UnaryFunc
	functions map[string]Function
	prelude   []*value.Object
}

// New returns an Engine with the default preamble (§4.5 "Preamble")
// registered: int64/double/string arithmetic, comparisons, and logical
// operators over the built-in types.
func New() *Engine {
	e := &Engine{
		binaryOps: make(map[binaryKey]BinaryFunc),
		unaryOps:  make(map[unaryKey]UnaryFunc),
		functions: make(map[string]Function),
	}
	registerDefaultPreamble(e)
	return e
}

// RegisterBinary installs a binary operator implementation for one operand
// type pair, overwriting any existing registration for the same key.
func (e *Engine) RegisterBinary(op operator.Operator, lhs, rhs reflect.Type, fn BinaryFunc) {
	e.binaryOps[binaryKey{op, lhs, rhs}] = fn
}

// RegisterUnary installs a unary operator implementation for one operand
// type.
func (e *Engine) RegisterUnary(op operator.Operator, operand reflect.Type, fn UnaryFunc) {
	e.unaryOps[unaryKey{op, operand}] = fn
}

// RegisterFunction installs a named function in the engine's function
// table, a separate table from identifier resolution. The evaluator does
// not consult this table: CTL source cannot reach a registered function by
// name, and only host code retrieves it, through Function.
func (e *Engine) RegisterFunction(name string, fn Function) {
	e.functions[name] = fn
}

// Function looks up a registered named function.
func (e *Engine) Function(name string) (Function, bool) {
	fn, ok := e.functions[name]
	return fn, ok
}

// PushPrelude appends an object to the ordered prelude sequence; every
// evaluation's context stack is seeded with the prelude in this order,
// innermost last (so a later PushPrelude call shadows an earlier one).
func (e *Engine) PushPrelude(o *value.Object) {
	e.prelude = append(e.prelude, o)
}

// ValueLess delegates to the registered `less` binary operator, exposing a
// total order over Value usable as a comparator by host code that wants to
// build ordered maps or sets over values embedding this engine produces.
// It panics if no `less` implementation is registered for the pair's types,
// the same way a missing dispatch entry would during normal evaluation.
func (e *Engine) ValueLess(a, b value.Value) bool {
	fn, ok := e.binaryOps[binaryKey{operator.Less, a.Type(), b.Type()}]
	if !ok {
		panic("evaluator: ValueLess: no `less' operator registered for these types")
	}
	result, err := fn(a, b)
	if err != nil {
		panic(err)
	}
	return value.MustAs[bool](result)
}
