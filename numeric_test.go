package seqfn

import (
	"fmt"
	"math"
	"testing"
)

var squareFn = NewFn("square", 1, func(args []Value) (Value, error) {
	x := args[0].Data.(float64)
	return Num(x * x), nil
})

func Test_Integrate_square(t *testing.T) {
	got, err := Integrate(squareFn, 0, 1, 0)
	mustOK(t, err)
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("integral of x^2 over [0,1] = %v", got)
	}
}

func Test_Integrate_int_results_are_accepted(t *testing.T) {
	one := NewFn("one", 1, func(args []Value) (Value, error) {
		return Int(1), nil
	})
	got, err := Integrate(one, 0, 2, 8)
	mustOK(t, err)
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("integral of 1 over [0,2] = %v", got)
	}
}

func Test_Integrate_propagates_call_errors(t *testing.T) {
	bomb := NewFn("bomb", 1, func(args []Value) (Value, error) {
		return Value{}, fmt.Errorf("no value here")
	})
	_, err := Integrate(bomb, 0, 1, 4)
	wantErrContains(t, err, "no value here")
}

func Test_Integrate_rejects_non_numeric_results(t *testing.T) {
	bad := NewFn("bad", 1, func(args []Value) (Value, error) {
		return Str("nope"), nil
	})
	_, err := Integrate(bad, 0, 1, 4)
	wantErrContains(t, err, "numeric scalar")
}

func Test_Float1_bridges_values(t *testing.T) {
	g := Float1(squareFn)
	if got := g(3); got != 9 {
		t.Fatalf("g(3) = %v", got)
	}
}

func Test_RunFloat_passes_non_error_panics_through(t *testing.T) {
	defer func() {
		if r := recover(); r != "not an error" {
			t.Fatalf("recovered %v", r)
		}
	}()
	_, _ = RunFloat(func() float64 { panic("not an error") })
	t.Fatalf("panic did not propagate")
}
