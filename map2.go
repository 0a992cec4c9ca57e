// map2.go — the paired and k-ary mapper family, with length recycling.
//
// Recycling extends each shorter input cyclically to the longest length L,
// and is only valid when every shorter length evenly divides L. The check
// runs before any call to the supplied function; a violation is a
// *RecycleError and no element is visited.
package seqfn

// recycleLen reconciles input lengths. It returns the target length
// L = max(lengths); any shorter length that does not evenly divide L (zero
// included, against a non-empty target) fails.
func recycleLen(lengths ...int) (int, error) {
	target := 0
	for _, l := range lengths {
		if l > target {
			target = l
		}
	}
	for _, l := range lengths {
		if l == target {
			continue
		}
		if l == 0 || target%l != 0 {
			return 0, &RecycleError{Len: l, Target: target}
		}
	}
	return target, nil
}

// outNames picks the result's name mapping for a multi-input call: the
// first input whose length equals the target and that carries names wins.
func outNames(target int, xs ...*Seq) []string {
	for _, x := range xs {
		if x.Len() == target && x.HasNames() {
			return append([]string(nil), x.Names...)
		}
	}
	return nil
}

// Map2 applies the binary f across x and y elementwise, recycling the
// shorter input. Output length is max(len(x), len(y)).
func Map2(x, y *Seq, f Fn, extra ...Value) (*Seq, error) {
	target, err := recycleLen(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}
	out := &Seq{Elems: make([]Value, target), Names: outNames(target, x, y)}
	g := f.Bind(extra...)
	for i := 0; i < target; i++ {
		v, err := g.Call(x.Elems[i%x.Len()], y.Elems[i%y.Len()])
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}

// Map2Kind is Map2 with a declared scalar result kind (see MapKind).
func Map2Kind(x, y *Seq, k Kind, f Fn, extra ...Value) (*Seq, error) {
	target, err := recycleLen(x.Len(), y.Len())
	if err != nil {
		return nil, err
	}
	out := &Seq{Elems: make([]Value, target), Names: outNames(target, x, y)}
	g := f.Bind(extra...)
	for i := 0; i < target; i++ {
		v, err := g.Call(x.Elems[i%x.Len()], y.Elems[i%y.Len()])
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

// Walk2 traverses x and y pairwise (with recycling) purely for side
// effects and returns x unchanged.
func Walk2(x, y *Seq, f Fn, extra ...Value) (*Seq, error) {
	target, err := recycleLen(x.Len(), y.Len())
	if err != nil {
		return x, err
	}
	g := f.Bind(extra...)
	for i := 0; i < target; i++ {
		if _, err := g.Call(x.Elems[i%x.Len()], y.Elems[i%y.Len()]); err != nil {
			return x, err
		}
	}
	return x, nil
}

// MapN generalizes Map2 to any number of parallel inputs: f receives one
// argument per input sequence (recycled), then the trailing constants.
func MapN(xs []*Seq, f Fn, extra ...Value) (*Seq, error) {
	lengths := make([]int, len(xs))
	for i, x := range xs {
		lengths[i] = x.Len()
	}
	target, err := recycleLen(lengths...)
	if err != nil {
		return nil, err
	}
	out := &Seq{Elems: make([]Value, target), Names: outNames(target, xs...)}
	g := f.Bind(extra...)
	args := make([]Value, len(xs))
	for i := 0; i < target; i++ {
		for j, x := range xs {
			args[j] = x.Elems[i%x.Len()]
		}
		v, err := g.Call(args...)
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}
