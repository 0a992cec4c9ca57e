package seqfn

import "testing"

func Test_error_messages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ArityError{Fn: "add", Want: 2, Got: 1}, "add expects 2 argument(s), got 1"},
		{&ArityError{Fn: "", Want: 2, Got: 1}, "<fn> expects 2 argument(s), got 1"},
		{&ArityError{Fn: "f", Want: -1, Got: 3}, "f is not callable"},
		{&ShapeError{Index: 4, Msg: "want a single Int scalar, got Str"}, "shape error at index 4: want a single Int scalar, got Str"},
		{&ShapeError{Index: -1, Msg: "2 names for 1 elements"}, "shape error: 2 names for 1 elements"},
		{&RecycleError{Len: 2, Target: 3}, "cannot recycle length 2 to length 3"},
		{&EmptyInputError{Op: "reduce"}, "reduce of empty sequence with no initial value"},
		{&PredicateTypeError{Index: 0, Got: VTInt}, "predicate returned Int (want Bool) at index 0"},
		{&KeyNotFoundError{Key: "name", At: 1}, `no element named "name" in element 1`},
		{&KeyNotFoundError{Pos: 3, ByPos: true, At: 0}, "no element at position 3 in element 0"},
	}
	for i, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("case %d: %q, want %q", i, got, c.want)
		}
	}
}
