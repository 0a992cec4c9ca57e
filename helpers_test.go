package seqfn

import (
	"strings"
	"testing"
)

// ---- shared test helpers ----------------------------------------------

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func wantErrContains(t *testing.T, err error, sub string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error containing %q, got nil", sub)
	}
	if !strings.Contains(err.Error(), sub) {
		t.Fatalf("error %q does not contain %q", err.Error(), sub)
	}
}

func mustSeq(t *testing.T, v Value) *Seq {
	t.Helper()
	if v.Tag != VTSeq {
		t.Fatalf("expected a sequence, got %#v", v)
	}
	return v.Data.(*Seq)
}

func wantInts(t *testing.T, s *Seq, want ...int64) {
	t.Helper()
	if s.Len() != len(want) {
		t.Fatalf("length = %d, want %d (%v)", s.Len(), len(want), s.Elems)
	}
	for i, w := range want {
		v := s.Elems[i]
		if v.Tag != VTInt || v.Data.(int64) != w {
			t.Fatalf("element %d = %#v, want %d", i, v, w)
		}
	}
}

// Sample functions used across the tests.

var addFn = NewFn("add", 2, func(args []Value) (Value, error) {
	return Int(args[0].Data.(int64) + args[1].Data.(int64)), nil
})

var subFn = NewFn("sub", 2, func(args []Value) (Value, error) {
	return Int(args[0].Data.(int64) - args[1].Data.(int64)), nil
})

var doubleFn = NewFn("double", 1, func(args []Value) (Value, error) {
	return Int(2 * args[0].Data.(int64)), nil
})

var isEvenFn = NewFn("isEven", 1, func(args []Value) (Value, error) {
	return Bool(args[0].Data.(int64)%2 == 0), nil
})

var lengthFn = NewFn("length", 1, func(args []Value) (Value, error) {
	return Int(int64(len(args[0].Data.(string)))), nil
})
