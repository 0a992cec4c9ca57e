// reduce.go — left folds and their scanning variants.
//
// The fold order is strictly left-to-right and is never reordered: the
// combining function need not be associative or commutative. Trailing
// constants are appended after (accumulator, element) on every step.
package seqfn

// Reduce combines x into a single value: acc starts as x[0] and each step
// computes acc = f(acc, x[i]). An empty input with no initial value is an
// *EmptyInputError; use ReduceFrom to seed one.
func Reduce(x *Seq, f Fn, extra ...Value) (Value, error) {
	if x.Len() == 0 {
		return Value{}, &EmptyInputError{Op: "reduce"}
	}
	g := f.Bind(extra...)
	acc := x.Elems[0]
	for i := 1; i < x.Len(); i++ {
		v, err := g.Call(acc, x.Elems[i])
		if err != nil {
			return Value{}, err
		}
		acc = v
	}
	return acc, nil
}

// ReduceFrom is Reduce with an explicit initial accumulator; the fold then
// runs over all n elements, and an empty input yields the initial value.
func ReduceFrom(x *Seq, initial Value, f Fn, extra ...Value) (Value, error) {
	g := f.Bind(extra...)
	acc := initial
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(acc, x.Elems[i])
		if err != nil {
			return Value{}, err
		}
		acc = v
	}
	return acc, nil
}

// Accumulate is the scanning Reduce: it returns every intermediate
// accumulator in order, length n, with the final fold result last.
func Accumulate(x *Seq, f Fn, extra ...Value) (*Seq, error) {
	if x.Len() == 0 {
		return nil, &EmptyInputError{Op: "accumulate"}
	}
	g := f.Bind(extra...)
	out := &Seq{Elems: make([]Value, x.Len())}
	acc := x.Elems[0]
	out.Elems[0] = acc
	for i := 1; i < x.Len(); i++ {
		v, err := g.Call(acc, x.Elems[i])
		if err != nil {
			return nil, err
		}
		acc = v
		out.Elems[i] = acc
	}
	return out, nil
}

// AccumulateFrom seeds the scan with an explicit initial value; the result
// has length n+1 and starts with that value.
func AccumulateFrom(x *Seq, initial Value, f Fn, extra ...Value) (*Seq, error) {
	g := f.Bind(extra...)
	out := &Seq{Elems: make([]Value, x.Len()+1)}
	acc := initial
	out.Elems[0] = acc
	for i := 0; i < x.Len(); i++ {
		v, err := g.Call(acc, x.Elems[i])
		if err != nil {
			return nil, err
		}
		acc = v
		out.Elems[i+1] = acc
	}
	return out, nil
}
