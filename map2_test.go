package seqfn

import (
	"errors"
	"testing"
)

func Test_Map2_equal_lengths(t *testing.T) {
	out, err := Map2(FromInts(1, 2, 3), FromInts(10, 20, 30), addFn)
	mustOK(t, err)
	wantInts(t, out, 11, 22, 33)
}

func Test_Map2_recycles_shorter_input(t *testing.T) {
	// [1,2,3,4] against [10,20] behaves as if the short input were
	// written out as [10,20,10,20].
	out, err := Map2(FromInts(1, 2, 3, 4), FromInts(10, 20), addFn)
	mustOK(t, err)
	wantInts(t, out, 11, 22, 13, 24)

	expanded, err := Map2(FromInts(1, 2, 3, 4), FromInts(10, 20, 10, 20), addFn)
	mustOK(t, err)
	for i := range out.Elems {
		if !Equal(out.Elems[i], expanded.Elems[i]) {
			t.Fatalf("recycled element %d = %#v, expanded = %#v", i, out.Elems[i], expanded.Elems[i])
		}
	}
}

func Test_Map2_scalar_recycling(t *testing.T) {
	out, err := Map2(FromInts(1, 2, 3), FromInts(100), addFn)
	mustOK(t, err)
	wantInts(t, out, 101, 102, 103)
}

func Test_Map2_uneven_lengths_rejected(t *testing.T) {
	_, err := Map2(FromInts(1, 2, 3), FromInts(10, 20), addFn)
	var re *RecycleError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecycleError, got %v", err)
	}
	if re.Len != 2 || re.Target != 3 {
		t.Fatalf("recycle fields = %#v", re)
	}
}

func Test_Map2_empty_against_nonempty_rejected(t *testing.T) {
	_, err := Map2(NewSeq(), FromInts(1, 2), addFn)
	var re *RecycleError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecycleError, got %v", err)
	}
	if re.Len != 0 || re.Target != 2 {
		t.Fatalf("recycle fields = %#v", re)
	}
}

func Test_Map2_both_empty(t *testing.T) {
	out, err := Map2(NewSeq(), NewSeq(), addFn)
	mustOK(t, err)
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %#v", out)
	}
}

func Test_Map2_names_come_from_full_length_input(t *testing.T) {
	x, err := Named([]string{"a", "b", "c", "d"}, []Value{Int(1), Int(2), Int(3), Int(4)})
	mustOK(t, err)

	out, err := Map2(x, FromInts(10, 20), addFn)
	mustOK(t, err)
	if !out.HasNames() || out.Names[3] != "d" {
		t.Fatalf("names not taken from the longer input: %#v", out.Names)
	}

	// A named short input does not impose its names on a longer result.
	y, err := Named([]string{"p", "q"}, []Value{Int(10), Int(20)})
	mustOK(t, err)
	out, err = Map2(FromInts(1, 2, 3, 4), y, addFn)
	mustOK(t, err)
	if out.HasNames() {
		t.Fatalf("recycled input leaked its names: %#v", out.Names)
	}
}

func Test_Map2Kind_shape_error(t *testing.T) {
	f := NewFn("strcat", 2, func(args []Value) (Value, error) {
		return Str("x"), nil
	})
	_, err := Map2Kind(FromInts(1, 2), FromInts(3, 4), KindInt, f)
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %v", err)
	}
	if se.Index != 0 {
		t.Fatalf("shape error index = %d, want 0", se.Index)
	}
}

func Test_Walk2_returns_first_input(t *testing.T) {
	x := FromInts(1, 2, 3, 4)
	var pairs [][2]int64
	f := NewFn("record", 2, func(args []Value) (Value, error) {
		pairs = append(pairs, [2]int64{args[0].Data.(int64), args[1].Data.(int64)})
		return Null, nil
	})

	got, err := Walk2(x, FromInts(10, 20), f)
	mustOK(t, err)
	if got != x {
		t.Fatalf("walk2 did not return its first input")
	}
	want := [][2]int64{{1, 10}, {2, 20}, {3, 10}, {4, 20}}
	if len(pairs) != len(want) {
		t.Fatalf("pairs = %v", pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func Test_MapN_three_inputs(t *testing.T) {
	sum3 := NewFn("sum3", 3, func(args []Value) (Value, error) {
		return Int(args[0].Data.(int64) + args[1].Data.(int64) + args[2].Data.(int64)), nil
	})
	out, err := MapN([]*Seq{
		FromInts(1, 2, 3, 4),
		FromInts(10, 20),
		FromInts(100),
	}, sum3)
	mustOK(t, err)
	wantInts(t, out, 111, 122, 113, 124)
}

func Test_MapN_trailing_constants(t *testing.T) {
	sum3 := NewFn("sum3", 3, func(args []Value) (Value, error) {
		return Int(args[0].Data.(int64) + args[1].Data.(int64) + args[2].Data.(int64)), nil
	})
	out, err := MapN([]*Seq{FromInts(1, 2), FromInts(10, 20)}, sum3, Int(1000))
	mustOK(t, err)
	wantInts(t, out, 1011, 1022)
}

func Test_MapN_uneven_lengths_rejected(t *testing.T) {
	_, err := MapN([]*Seq{FromInts(1, 2, 3, 4, 5, 6), FromInts(1, 2, 3), FromInts(1, 2, 3, 4)}, addFn)
	var re *RecycleError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecycleError, got %v", err)
	}
	if re.Len != 4 || re.Target != 6 {
		t.Fatalf("recycle fields = %#v", re)
	}
}
