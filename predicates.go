// predicates.go — quantifiers, searches and filters driven by a boolean
// predicate.
//
// The scanning quantifiers (Some, Every, Detect, DetectIndex) short-circuit
// with an early-return loop over explicit indices: once the verdict is
// known, the predicate is not evaluated on later elements, which is
// observable when it has side effects.
//
// A predicate must yield a single boolean per element. By default a
// non-boolean result is rejected with a *PredicateTypeError; the Truthy
// option switches to coercion (null/false/zero/empty are false, everything
// else true).
package seqfn

// PredOpt configures how a predicate's result is read.
type PredOpt func(*predCfg)

type predCfg struct {
	truthy bool
}

// Truthy selects coercing predicate evaluation instead of the default
// strict rejection of non-boolean results.
func Truthy() PredOpt {
	return func(c *predCfg) { c.truthy = true }
}

func predConfig(opts []PredOpt) predCfg {
	var c predCfg
	for _, o := range opts {
		o(&c)
	}
	return c
}

// verdict evaluates p on one element and reads the result under cfg.
func verdict(p Fn, i int, el Value, cfg predCfg) (bool, error) {
	v, err := p.Call(el)
	if err != nil {
		return false, err
	}
	if v.Tag == VTBool {
		return v.Data.(bool), nil
	}
	if cfg.truthy {
		return truthy(v), nil
	}
	return false, &PredicateTypeError{Index: i, Got: v.Tag}
}

// Some reports whether at least one element satisfies p, stopping at the
// first match.
func Some(x *Seq, p Fn, opts ...PredOpt) (bool, error) {
	cfg := predConfig(opts)
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Every reports whether all elements satisfy p, stopping at the first
// failure. The empty sequence vacuously satisfies Every.
func Every(x *Seq, p Fn, opts ...PredOpt) (bool, error) {
	cfg := predConfig(opts)
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Detect returns the first element satisfying p. The second result is false
// when nothing matched (the first is then the zero Value).
func Detect(x *Seq, p Fn, opts ...PredOpt) (Value, bool, error) {
	cfg := predConfig(opts)
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return Value{}, false, err
		}
		if ok {
			return x.Elems[i], true, nil
		}
	}
	return Value{}, false, nil
}

// DetectIndex returns the zero-based position of the first element
// satisfying p, or -1 when nothing matched.
func DetectIndex(x *Seq, p Fn, opts ...PredOpt) (int, error) {
	cfg := predConfig(opts)
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

// Keep returns the subsequence of elements satisfying p, preserving
// relative order and each kept element's name.
func Keep(x *Seq, p Fn, opts ...PredOpt) (*Seq, error) {
	return filter(x, p, opts, true)
}

// Discard is the complement of Keep: the elements for which p does not
// hold.
func Discard(x *Seq, p Fn, opts ...PredOpt) (*Seq, error) {
	return filter(x, p, opts, false)
}

func filter(x *Seq, p Fn, opts []PredOpt, want bool) (*Seq, error) {
	cfg := predConfig(opts)
	out := &Seq{}
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return nil, err
		}
		if ok == want {
			out.Append(x.Name(i), x.Elems[i])
		}
	}
	return out, nil
}

// MapIf applies f only to the elements satisfying p; the rest pass through
// unchanged at their original position. The predicate is read strictly —
// wrap it with AsPredicate for truthiness coercion. Trailing constants in
// extra go to f, not to p.
func MapIf(x *Seq, p Fn, f Fn, extra ...Value) (*Seq, error) {
	return mapWhere(x, p, f, extra, x.Copy())
}

// ModifyIf is MapIf rebuilt in the input's concrete shape; on a plain
// sequence the two coincide (Table input has Table.ModifyIf).
func ModifyIf(x *Seq, p Fn, f Fn, extra ...Value) (*Seq, error) {
	return mapWhere(x, p, f, extra, x.Copy())
}

func mapWhere(x *Seq, p Fn, f Fn, extra []Value, out *Seq) (*Seq, error) {
	g := f.Bind(extra...)
	var cfg predCfg
	for i := 0; i < x.Len(); i++ {
		ok, err := verdict(p, i, x.Elems[i], cfg)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		v, err := g.Call(x.Elems[i])
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}
