// seq.go — the ordered, possibly-named sequence container.
//
// A Seq is the one collection shape the traversal primitives operate on:
// finite, ordered, heterogeneous elements, optionally carrying a parallel
// name per position. Names follow the ordered-keys discipline of an
// insertion-ordered map: the slice order is the iteration order, and names
// are present-or-absent uniformly (Names is either empty or parallel to
// Elems).
package seqfn

import "fmt"

// Seq is an ordered collection of values with optional positional names.
//
// Invariant: len(Names) == 0 or len(Names) == len(Elems).
type Seq struct {
	Elems []Value
	Names []string
}

// NewSeq builds an unnamed sequence from the given elements.
func NewSeq(elems ...Value) *Seq {
	return &Seq{Elems: elems}
}

// Named builds a sequence with one name per element. The two slices must be
// parallel; a length mismatch is a *ShapeError.
func Named(names []string, elems []Value) (*Seq, error) {
	if len(names) != len(elems) {
		return nil, &ShapeError{Index: -1,
			Msg: fmt.Sprintf("%d names for %d elements", len(names), len(elems))}
	}
	return &Seq{Elems: elems, Names: append([]string(nil), names...)}, nil
}

// Convenience constructors for homogeneous input.

func FromInts(xs ...int64) *Seq {
	s := &Seq{Elems: make([]Value, len(xs))}
	for i, x := range xs {
		s.Elems[i] = Int(x)
	}
	return s
}

func FromNums(xs ...float64) *Seq {
	s := &Seq{Elems: make([]Value, len(xs))}
	for i, x := range xs {
		s.Elems[i] = Num(x)
	}
	return s
}

func FromStrs(xs ...string) *Seq {
	s := &Seq{Elems: make([]Value, len(xs))}
	for i, x := range xs {
		s.Elems[i] = Str(x)
	}
	return s
}

func FromBools(xs ...bool) *Seq {
	s := &Seq{Elems: make([]Value, len(xs))}
	for i, x := range xs {
		s.Elems[i] = Bool(x)
	}
	return s
}

// Len reports the number of elements. A nil Seq is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Elems)
}

// At returns the element at position i. Bounds are the caller's problem,
// exactly as with a slice.
func (s *Seq) At(i int) Value { return s.Elems[i] }

// HasNames reports whether the sequence carries a name mapping.
func (s *Seq) HasNames() bool { return s != nil && len(s.Names) > 0 }

// Name returns the name at position i, or "" for unnamed sequences.
func (s *Seq) Name(i int) string {
	if !s.HasNames() {
		return ""
	}
	return s.Names[i]
}

// Index returns the position of the first element named name, or -1.
func (s *Seq) Index(name string) int {
	if s.HasNames() {
		for i, n := range s.Names {
			if n == name {
				return i
			}
		}
	}
	return -1
}

// Get returns the first element named name.
func (s *Seq) Get(name string) (Value, bool) {
	if i := s.Index(name); i >= 0 {
		return s.Elems[i], true
	}
	return Value{}, false
}

// Copy returns a structurally independent shallow copy (elements are shared;
// the element and name slices are not).
func (s *Seq) Copy() *Seq {
	if s == nil {
		return &Seq{}
	}
	out := &Seq{Elems: append([]Value(nil), s.Elems...)}
	if s.HasNames() {
		out.Names = append([]string(nil), s.Names...)
	}
	return out
}

// Append adds an element (and, on a named sequence, its name) and returns
// the receiver for chaining.
func (s *Seq) Append(name string, v Value) *Seq {
	s.Elems = append(s.Elems, v)
	if len(s.Names) > 0 || name != "" {
		for len(s.Names) < len(s.Elems)-1 {
			s.Names = append(s.Names, "")
		}
		s.Names = append(s.Names, name)
	}
	return s
}

// --- keyed/positional extraction across a sequence of sequences ----------

// Pluck extracts the element named key from every member of x. Each member
// must be a sequence; a member missing the key yields a *KeyNotFoundError
// naming the member's position. Names of x are preserved on the result.
func Pluck(x *Seq, key string) (*Seq, error) {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	for i := 0; i < x.Len(); i++ {
		el := x.Elems[i]
		if el.Tag != VTSeq {
			return nil, &KeyNotFoundError{Key: key, At: i}
		}
		v, ok := el.Data.(*Seq).Get(key)
		if !ok {
			return nil, &KeyNotFoundError{Key: key, At: i}
		}
		out.Elems[i] = v
	}
	return out, nil
}

// PluckIndex extracts the element at position pos from every member of x.
// A member shorter than pos+1 yields a *KeyNotFoundError.
func PluckIndex(x *Seq, pos int) (*Seq, error) {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	for i := 0; i < x.Len(); i++ {
		el := x.Elems[i]
		if el.Tag != VTSeq {
			return nil, &KeyNotFoundError{Pos: pos, ByPos: true, At: i}
		}
		inner := el.Data.(*Seq)
		if pos < 0 || pos >= inner.Len() {
			return nil, &KeyNotFoundError{Pos: pos, ByPos: true, At: i}
		}
		out.Elems[i] = inner.Elems[pos]
	}
	return out, nil
}

// PluckOr is Pluck with a default: members missing the key (or that are not
// sequences) contribute def instead of failing.
func PluckOr(x *Seq, key string, def Value) *Seq {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	for i := 0; i < x.Len(); i++ {
		out.Elems[i] = def
		if el := x.Elems[i]; el.Tag == VTSeq {
			if v, ok := el.Data.(*Seq).Get(key); ok {
				out.Elems[i] = v
			}
		}
	}
	return out
}
