package seqfn

import (
	"strings"
	"testing"
)

func Test_Format_scalars(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(42), "42"},
		{Num(1.5), "1.5"},
		{Num(2), "2.0"}, // whole floats keep the point
		{Str("hi"), `"hi"`},
		{Str("a\"b\n"), `"a\"b\n"`},
	} {
		if got := Format(tc.v); got != tc.want {
			t.Fatalf("Format(%#v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func Test_Format_short_seq_is_one_line(t *testing.T) {
	got := Format(SeqVal(FromInts(1, 2, 3)))
	if got != "[ 1, 2, 3 ]" {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_named_seq_uses_braces(t *testing.T) {
	s, _ := Named([]string{"a", "b"}, []Value{Int(1), Str("x")})
	got := Format(SeqVal(s))
	if got != `{ a: 1, b: "x" }` {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_non_ident_names_are_quoted(t *testing.T) {
	s, _ := Named([]string{"two words"}, []Value{Int(1)})
	got := Format(SeqVal(s))
	if got != `{ "two words": 1 }` {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_empty_seqs(t *testing.T) {
	if got := Format(SeqVal(NewSeq())); got != "[]" {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_long_seq_wraps(t *testing.T) {
	elems := make([]Value, 30)
	for i := range elems {
		elems[i] = Int(1000000 + int64(i))
	}
	got := Format(SeqVal(NewSeq(elems...)))
	if !strings.Contains(got, "\n") {
		t.Fatalf("long sequence did not wrap: %q", got)
	}
	if !strings.HasPrefix(got, "[\n") || !strings.HasSuffix(got, "]") {
		t.Fatalf("wrapped shape wrong: %q", got)
	}
	if !strings.Contains(got, "  1000000,\n") {
		t.Fatalf("indentation missing: %q", got)
	}
}

func Test_Format_functions(t *testing.T) {
	if got := Format(FunVal(addFn)); got != "<fn add/2>" {
		t.Fatalf("got %q", got)
	}
	v := VariadicFn("paste", func(args []Value) (Value, error) { return Null, nil })
	if got := Format(FunVal(v)); got != "<fn paste/...>" {
		t.Fatalf("got %q", got)
	}
	anon := NewFn("", 1, func(args []Value) (Value, error) { return Null, nil })
	if got := Format(FunVal(anon)); got != "<fn _/1>" {
		t.Fatalf("got %q", got)
	}
}

func Test_Format_nested_one_line_when_short(t *testing.T) {
	inner := SeqVal(FromInts(1, 2))
	got := Format(SeqVal(NewSeq(inner, Str("t"))))
	if got != `[ [ 1, 2 ], "t" ]` {
		t.Fatalf("got %q", got)
	}
}
