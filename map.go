// map.go — the elementwise traversal family: Map, the typed-output
// variants, Modify and Walk.
//
// All traversals here are strictly sequential in index order 0..n-1, never
// skip an element, and preserve the input's name mapping on the output.
// Errors from the supplied function propagate unchanged and abort the
// remaining traversal.
package seqfn

import "fmt"

// Map applies f to every element of x in index order, collecting results
// into a new sequence of the same length. Trailing constants in extra are
// appended after the element on every call. Names are preserved.
func Map(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(x.Elems[i])
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}

// MapKind is Map with a declared scalar result kind. Every per-element
// result must reduce to exactly one scalar of kind k (a one-element
// sequence is unwrapped; VTInt widens to KindNum); anything else is a
// *ShapeError naming the offending index.
func MapKind(x *Seq, k Kind, f Fn, extra ...Value) (*Seq, error) {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(x.Elems[i])
		if err != nil {
			return nil, err
		}
		cv, ok := conformKind(v, k)
		if !ok {
			return nil, &ShapeError{Index: i, Msg: shapeMsg(v, k)}
		}
		out.Elems[i] = cv
	}
	return out, nil
}

func shapeMsg(v Value, k Kind) string {
	if v.Tag == VTSeq {
		return fmt.Sprintf("want a single %s scalar, got a sequence of %d", k, v.Data.(*Seq).Len())
	}
	return fmt.Sprintf("want a single %s scalar, got %s", k, v.Tag)
}

// MapBool, MapInt, MapNum and MapStr run MapKind for the matching kind and
// unpack the homogeneous result into a plain Go slice.

func MapBool(x *Seq, f Fn, extra ...Value) ([]bool, error) {
	s, err := MapKind(x, KindBool, f, extra...)
	if err != nil {
		return nil, err
	}
	out := make([]bool, s.Len())
	for i, v := range s.Elems {
		out[i] = v.Data.(bool)
	}
	return out, nil
}

func MapInt(x *Seq, f Fn, extra ...Value) ([]int64, error) {
	s, err := MapKind(x, KindInt, f, extra...)
	if err != nil {
		return nil, err
	}
	out := make([]int64, s.Len())
	for i, v := range s.Elems {
		out[i] = v.Data.(int64)
	}
	return out, nil
}

func MapNum(x *Seq, f Fn, extra ...Value) ([]float64, error) {
	s, err := MapKind(x, KindNum, f, extra...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, s.Len())
	for i, v := range s.Elems {
		out[i] = v.Data.(float64)
	}
	return out, nil
}

func MapStr(x *Seq, f Fn, extra ...Value) ([]string, error) {
	s, err := MapKind(x, KindStr, f, extra...)
	if err != nil {
		return nil, err
	}
	out := make([]string, s.Len())
	for i, v := range s.Elems {
		out[i] = v.Data.(string)
	}
	return out, nil
}

// Modify is the structure-preserving mapper: the result is rebuilt in the
// input's concrete shape (same length, same names), with each position
// replaced by f's result. On a plain sequence this is Map on a copy of the
// container; Table has its own Modify for tabular input.
func Modify(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	out := x.Copy()
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(x.Elems[i])
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}

// Walk applies f to every element in index order for its side effects,
// discarding results, and returns x unchanged for chaining. Side effects
// already performed before an error stand.
func Walk(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		if _, err := g.Call(x.Elems[i]); err != nil {
			return x, err
		}
	}
	return x, nil
}
