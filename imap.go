// imap.go — indexed traversal: the second argument is synthesized from the
// input's own name mapping, or its zero-based position when unnamed.
package seqfn

// keyOrIndex is the synthesized second argument for the indexed family.
func keyOrIndex(x *Seq, i int) Value {
	if x.HasNames() {
		return Str(x.Names[i])
	}
	return Int(int64(i))
}

// Imap applies the binary f to (element, key-or-index) pairs in index
// order. Named input passes the element's name as a string; unnamed input
// passes the zero-based position as an integer.
func Imap(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	out := &Seq{Elems: make([]Value, x.Len())}
	if x.HasNames() {
		out.Names = append([]string(nil), x.Names...)
	}
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(x.Elems[i], keyOrIndex(x, i))
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}

// Iwalk is Imap for side effects only; results are discarded and x is
// returned unchanged.
func Iwalk(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	g := f.Bind(extra...)
	for i := 0; i < x.Len(); i++ {
		if _, err := g.Call(x.Elems[i], keyOrIndex(x, i)); err != nil {
			return x, err
		}
	}
	return x, nil
}
