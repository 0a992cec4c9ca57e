// numeric.go — bridge to external numeric black boxes.
//
// The library does not implement quadrature or root finding itself; it
// adapts an Fn into the plain float-to-float shape those routines consume
// and hands the interval to gonum. A function value that errors or yields a
// non-numeric result inside the black box surfaces as an error from the
// bridge, not a panic.
package seqfn

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

// Float1 adapts a unary Fn to func(float64) float64 for use with numeric
// routines that have no error channel. A call error or non-numeric result
// panics with that error; RunFloat recovers it.
func Float1(f Fn) func(float64) float64 {
	return func(x float64) float64 {
		v, err := f.Call(Num(x))
		if err != nil {
			panic(err)
		}
		switch v.Tag {
		case VTNum:
			return v.Data.(float64)
		case VTInt:
			return float64(v.Data.(int64))
		default:
			panic(&ShapeError{Index: -1, Msg: fmt.Sprintf("want a numeric scalar, got %s", v.Tag)})
		}
	}
}

// RunFloat executes body (typically a numeric routine driving a Float1
// bridge) and converts a bridge panic back into an error.
func RunFloat(body func() float64) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return body(), nil
}

// Integrate numerically integrates the unary f over [a, b] using
// fixed-location Gauss-Legendre quadrature with n evaluation points.
// n < 2 selects a sensible default.
func Integrate(f Fn, a, b float64, n int) (float64, error) {
	if n < 2 {
		n = 64
	}
	fn := Float1(f)
	return RunFloat(func() float64 {
		return quad.Fixed(fn, a, b, n, nil, 0)
	})
}
