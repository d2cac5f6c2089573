// Package loadexpr compiles textual load-intensity expressions into callable
// functions of the beam position x.
//
// Expressions are evaluated in a sandboxed environment exposing only the free
// variable x, basic arithmetic and exponentiation, and a small fixed math
// vocabulary. Arbitrary code execution is not possible; an unknown identifier
// is a compile error.
//
// Examples of accepted expressions:
//
//	100
//	50*x
//	20*(x-2)**2
//	10*sin(x) + 5
package loadexpr

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExpressionError reports a failure to compile or evaluate a load-intensity
// expression. The underlying evaluator error is wrapped unmodified.
type ExpressionError struct {
	Expr string
	Err  error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("load expression %q: %v", e.Expr, e.Err)
}

func (e *ExpressionError) Unwrap() error { return e.Err }

// Function is a compiled load-intensity expression q(x).
//
// A Function reuses its evaluation environment across calls and is therefore
// not safe for concurrent use; the analysis pipeline is synchronous.
type Function struct {
	src     string
	program *vm.Program
	env     map[string]interface{}
}

// baseEnv returns the evaluation sandbox: the free variable plus the math
// vocabulary available to load shapes.
func baseEnv() map[string]interface{} {
	return map[string]interface{}{
		"x":    float64(0),
		"abs":  math.Abs,
		"sqrt": math.Sqrt,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"exp":  math.Exp,
		"log":  math.Log,
		"pow":  math.Pow,
		"pi":   math.Pi,
		"e":    math.E,
	}
}

// Compile parses and type-checks an intensity expression. The result must be
// numeric; anything else fails with ExpressionError.
func Compile(src string) (*Function, error) {
	env := baseEnv()
	program, err := expr.Compile(src, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, &ExpressionError{Expr: src, Err: err}
	}
	return &Function{src: src, program: program, env: env}, nil
}

// Eval evaluates the expression at position x.
func (f *Function) Eval(x float64) (float64, error) {
	f.env["x"] = x
	out, err := expr.Run(f.program, f.env)
	if err != nil {
		return 0, &ExpressionError{Expr: f.src, Err: err}
	}
	return out.(float64), nil
}

// Intensity adapts the compiled expression to a plain q(x) callable as
// consumed by the beam core. Evaluation failures surface as NaN, which the
// quadrature layer propagates as a non-finite integral.
func (f *Function) Intensity() func(float64) float64 {
	return func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// String returns the original expression source, for report annotations.
func (f *Function) String() string { return f.src }
