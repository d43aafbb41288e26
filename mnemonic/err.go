package mnemonic

import (
	"errors"

	"github.com/ezrec/hp15c/translate"
)

var f = translate.From

var (
	// Diagnostic kinds
	ErrCommandUnknown    = errors.New(f("command unknown"))
	ErrNoArgument        = errors.New(f("no argument"))
	ErrArgumentMissing   = errors.New(f("argument missing"))
	ErrArgumentInvalid   = errors.New(f("argument invalid"))
	ErrExpressionInvalid = errors.New(f("expression invalid"))

	// Expression evaluation errors
	ErrExpressionType     = errors.New(f("not a number"))
	ErrExpressionRange    = errors.New(f("not a finite number"))
	ErrExpressionConstant = errors.New(f("not a constant expression"))
)

// ErrExpression is a failed constant expression evaluation.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
