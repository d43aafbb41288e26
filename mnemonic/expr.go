package mnemonic

import (
	"math"
	"strconv"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EXPR_STEPS bounds the work of a constant expression.
const EXPR_STEPS = 1 << 16

// constant checks that an expression only does arithmetic on numbers,
// with calls into the math module.
func constant(expr syntax.Expr) (err error) {
	isMath := func(x syntax.Expr) bool {
		ident, ok := x.(*syntax.Ident)
		return ok && ident.Name == "math"
	}

	syntax.Walk(expr, func(node syntax.Node) bool {
		if err != nil {
			return false
		}
		switch node := node.(type) {
		case nil:
		case *syntax.Literal:
			if node.Token != syntax.INT && node.Token != syntax.FLOAT {
				err = ErrExpressionConstant
			}
		case *syntax.Ident, *syntax.ParenExpr, *syntax.UnaryExpr, *syntax.BinaryExpr, *syntax.CondExpr:
		case *syntax.DotExpr:
			if !isMath(node.X) {
				err = ErrExpressionConstant
			}
		case *syntax.CallExpr:
			dot, ok := node.Fn.(*syntax.DotExpr)
			if !ok || !isMath(dot.X) {
				err = ErrExpressionConstant
			}
		default:
			err = ErrExpressionConstant
		}
		return err == nil
	})

	return
}

// Evaluate computes a constant expression to a number literal.
//
// The expression is Starlark arithmetic on numbers, with the math module
// predeclared. Floats are rounded to the ten significant digits of the
// calculator display.
func Evaluate(expr string) (literal string, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	opts := syntax.FileOptions{}
	tree, err := opts.ParseExpr("expr", expr, 0)
	if err != nil {
		return
	}

	err = constant(tree)
	if err != nil {
		return
	}

	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_STEPS)
	pred := starlark.StringDict{
		"math": starlarkmath.Module,
	}
	result, err := starlark.EvalExprOptions(&opts, &thread, tree, pred)
	if err != nil {
		return
	}

	switch rc := result.(type) {
	case starlark.Int:
		literal = rc.String()
	case starlark.Float:
		value := float64(rc)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			err = ErrExpressionRange
			return
		}
		literal = strconv.FormatFloat(value, 'G', 10, 64)
	default:
		err = ErrExpressionType
	}

	return
}
