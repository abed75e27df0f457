// Package ctl is the public facade over the CTL language core: parsing
// source text to an AST and evaluating an AST to a value.Value, without
// callers needing to reach into internal/ directly. It plays the role the
// teacher's top-level lexer/parser/interp packages play for DWScript.
package ctl

import (
	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/evaluator"
	"github.com/m-ou-se/configtaal/internal/parser"
	"github.com/m-ou-se/configtaal/internal/tracker"
	"github.com/m-ou-se/configtaal/internal/value"
)

// Tracker and Span are re-exported so callers never need to import
// internal/tracker themselves to hold on to source spans.
type (
	Tracker = tracker.Tracker
	Span    = tracker.Span
)

// Value is the evaluator's type-erased runtime value.
type Value = value.Value

// Engine is a configured dispatch-table + prelude, safe for concurrent
// Evaluate calls once constructed.
type Engine = evaluator.Engine

// NewTracker returns a fresh, empty source tracker.
func NewTracker() *Tracker { return tracker.New() }

// NewEngine returns an Engine with the default preamble installed.
func NewEngine() *Engine { return evaluator.New() }

// Parse parses a single expression from the given span of tr's pool.
func Parse(tr *Tracker, span Span) (ast.Expression, error) {
	return parser.Parse(tr, span)
}

// ParseString is a convenience wrapper that adds source text to a fresh
// tracker and parses it in one step, returning the tracker alongside the
// AST so callers can still resolve spans (e.g. to feed pkg/diag on a later
// evaluation error).
func ParseString(name, source string) (*Tracker, ast.Expression, error) {
	tr := NewTracker()
	span := tr.AddString(name, source)
	expr, err := Parse(tr, span)
	return tr, expr, err
}

// ParseFile loads a file into a fresh tracker and parses it.
func ParseFile(path string) (*Tracker, ast.Expression, error) {
	tr := NewTracker()
	span, err := tr.AddFile(path)
	if err != nil {
		return tr, nil, err
	}
	expr, err := Parse(tr, span)
	return tr, expr, err
}

// Evaluate reduces expr to a value against engine.
func Evaluate(engine *Engine, expr ast.Expression) (Value, error) {
	return engine.Evaluate(expr)
}

// Token is a debugging-only view of one atom the parser recognized while
// scanning, used by the `ctl lex` CLI subcommand.
type Token = parser.Token

// Lex re-scans span, reporting the atoms the parser would see without
// building an AST.
func Lex(tr *Tracker, span Span) ([]Token, error) {
	return parser.Lex(tr, span)
}
