package seqfn

import (
	"errors"
	"testing"
)

// countingPred wraps isEvenFn and counts how many elements it actually saw.
func countingPred(calls *int) Fn {
	return NewFn("isEven", 1, func(args []Value) (Value, error) {
		*calls++
		return Bool(args[0].Data.(int64)%2 == 0), nil
	})
}

func Test_Some_short_circuits(t *testing.T) {
	calls := 0
	ok, err := Some(FromInts(1, 2, 3, 4), countingPred(&calls))
	mustOK(t, err)
	if !ok {
		t.Fatalf("expected a match")
	}
	if calls != 2 { // stops at the first even element
		t.Fatalf("predicate called %d times, want 2", calls)
	}
}

func Test_Some_no_match(t *testing.T) {
	ok, err := Some(FromInts(1, 3, 5), isEvenFn)
	mustOK(t, err)
	if ok {
		t.Fatalf("expected no match")
	}
}

func Test_Some_empty_is_false(t *testing.T) {
	ok, err := Some(NewSeq(), isEvenFn)
	mustOK(t, err)
	if ok {
		t.Fatalf("empty input should not satisfy Some")
	}
}

func Test_Every_short_circuits(t *testing.T) {
	calls := 0
	ok, err := Every(FromInts(2, 3, 4, 6), countingPred(&calls))
	mustOK(t, err)
	if ok {
		t.Fatalf("expected a failure")
	}
	if calls != 2 { // stops at the first odd element
		t.Fatalf("predicate called %d times, want 2", calls)
	}
}

func Test_Every_empty_is_vacuously_true(t *testing.T) {
	ok, err := Every(NewSeq(), isEvenFn)
	mustOK(t, err)
	if !ok {
		t.Fatalf("empty input should satisfy Every")
	}
}

func Test_Detect_first_match(t *testing.T) {
	v, found, err := Detect(FromInts(1, 3, 4, 6), isEvenFn)
	mustOK(t, err)
	if !found || v.Data.(int64) != 4 {
		t.Fatalf("detect = %#v, found = %v", v, found)
	}
}

func Test_Detect_no_match(t *testing.T) {
	v, found, err := Detect(FromInts(1, 3), isEvenFn)
	mustOK(t, err)
	if found || v.Tag != VTNull {
		t.Fatalf("detect on no match = %#v, found = %v", v, found)
	}
}

func Test_DetectIndex(t *testing.T) {
	i, err := DetectIndex(FromInts(1, 3, 4), isEvenFn)
	mustOK(t, err)
	if i != 2 {
		t.Fatalf("index = %d, want 2", i)
	}

	i, err = DetectIndex(FromInts(1, 3), isEvenFn)
	mustOK(t, err)
	if i != -1 {
		t.Fatalf("index on no match = %d, want -1", i)
	}
}

func Test_Keep_Discard_partition(t *testing.T) {
	x := FromInts(1, 2, 3, 4, 5, 6)

	kept, err := Keep(x, isEvenFn)
	mustOK(t, err)
	wantInts(t, kept, 2, 4, 6)

	dropped, err := Discard(x, isEvenFn)
	mustOK(t, err)
	wantInts(t, dropped, 1, 3, 5)

	if kept.Len()+dropped.Len() != x.Len() {
		t.Fatalf("keep and discard do not partition the input")
	}
}

func Test_Keep_preserves_names(t *testing.T) {
	x, err := Named([]string{"a", "b", "c"}, []Value{Int(1), Int(2), Int(4)})
	mustOK(t, err)

	kept, err := Keep(x, isEvenFn)
	mustOK(t, err)
	wantInts(t, kept, 2, 4)
	if !kept.HasNames() || kept.Names[0] != "b" || kept.Names[1] != "c" {
		t.Fatalf("kept names = %#v", kept.Names)
	}
}

func Test_Keep_unnamed_stays_unnamed(t *testing.T) {
	kept, err := Keep(FromInts(1, 2, 4), isEvenFn)
	mustOK(t, err)
	if kept.HasNames() {
		t.Fatalf("filter invented names: %#v", kept.Names)
	}
}

func Test_strict_predicate_rejects_non_bool(t *testing.T) {
	_, err := Some(FromInts(1, 2), doubleFn) // yields ints, not booleans
	var pe *PredicateTypeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PredicateTypeError, got %v", err)
	}
	if pe.Index != 0 || pe.Got != VTInt {
		t.Fatalf("predicate error fields = %#v", pe)
	}
}

func Test_Truthy_option_coerces(t *testing.T) {
	// Under coercion any non-zero integer counts as true.
	ok, err := Some(FromInts(0, 0, 5), NewFn("id", 1, func(args []Value) (Value, error) {
		return args[0], nil
	}), Truthy())
	mustOK(t, err)
	if !ok {
		t.Fatalf("expected 5 to be truthy")
	}

	ok, err = Every(FromInts(0, 5), NewFn("id", 1, func(args []Value) (Value, error) {
		return args[0], nil
	}), Truthy())
	mustOK(t, err)
	if ok {
		t.Fatalf("expected 0 to be falsy")
	}
}

func Test_MapIf_only_touches_matches(t *testing.T) {
	out, err := MapIf(FromInts(1, 2, 3, 4), isEvenFn, doubleFn)
	mustOK(t, err)
	wantInts(t, out, 1, 4, 3, 8)
}

func Test_MapIf_leaves_input_untouched(t *testing.T) {
	x := FromInts(1, 2)
	_, err := MapIf(x, isEvenFn, doubleFn)
	mustOK(t, err)
	wantInts(t, x, 1, 2)
}

func Test_MapIf_extras_go_to_f_not_p(t *testing.T) {
	out, err := MapIf(FromInts(1, 2, 3, 4), isEvenFn, addFn, Int(100))
	mustOK(t, err)
	wantInts(t, out, 1, 102, 3, 104)
}

func Test_MapIf_strict_predicate(t *testing.T) {
	_, err := MapIf(FromInts(1, 2), doubleFn, doubleFn)
	var pe *PredicateTypeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PredicateTypeError, got %v", err)
	}
}

func Test_AsPredicate_coerces_inside_MapIf(t *testing.T) {
	id := NewFn("id", 1, func(args []Value) (Value, error) { return args[0], nil })
	out, err := MapIf(FromInts(0, 3, 0, 5), AsPredicate(id), doubleFn)
	mustOK(t, err)
	wantInts(t, out, 0, 6, 0, 10)
}

func Test_ModifyIf_named_shape(t *testing.T) {
	x, err := Named([]string{"a", "b"}, []Value{Int(1), Int(2)})
	mustOK(t, err)
	out, err := ModifyIf(x, isEvenFn, doubleFn)
	mustOK(t, err)
	wantInts(t, out, 1, 4)
	if !out.HasNames() || out.Names[1] != "b" {
		t.Fatalf("modifyif dropped names: %#v", out.Names)
	}
}
