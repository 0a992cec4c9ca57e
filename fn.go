// fn.go — opaque callables with a declared parameter shape.
//
// An Fn is the function-value side of the traversal contract: a host Go
// closure with a fixed declared arity (or marked variadic), invoked by the
// primitives once per element/row/step. The arity is enforced on every Call;
// a mismatch is an *ArityError before the body runs. Trailing constant
// arguments are an explicit binding (Bind), never an ambient matching rule:
// a bound Fn appends its constants after the varying arguments on each call.
package seqfn

// Fn is an opaque callable with a declared arity. The zero Fn is not
// callable; Call on it returns an *ArityError.
type Fn struct {
	name     string
	arity    int
	variadic bool
	impl     func(args []Value) (Value, error)
	bound    []Value
}

// NewFn wraps impl as a callable of fixed arity. The name is used in
// diagnostics and by Equal; "" is fine for throwaway closures.
func NewFn(name string, arity int, impl func(args []Value) (Value, error)) Fn {
	return Fn{name: name, arity: arity, impl: impl}
}

// VariadicFn wraps impl as a callable accepting any number of arguments.
func VariadicFn(name string, impl func(args []Value) (Value, error)) Fn {
	return Fn{name: name, variadic: true, impl: impl}
}

// Name returns the registered name ("" for anonymous closures).
func (f Fn) Name() string { return f.name }

// Arity returns the declared parameter count (constants bound with Bind
// included); -1 for variadic functions.
func (f Fn) Arity() int {
	if f.variadic {
		return -1
	}
	return f.arity
}

// Callable reports whether the Fn has a body.
func (f Fn) Callable() bool { return f.impl != nil }

// Bind returns a copy of f with extra appended after the varying arguments
// of every subsequent Call. Binding onto a fixed-arity Fn consumes that many
// declared parameters: the returned Fn expects arity-len(extra) varying
// arguments.
func (f Fn) Bind(extra ...Value) Fn {
	f.bound = append(append([]Value(nil), f.bound...), extra...)
	return f
}

// Call invokes the function with the varying arguments, appending any bound
// constants. The declared shape is checked first: a zero Fn or a wrong
// argument count yields an *ArityError and the body never runs. Errors from
// the body propagate unchanged.
func (f Fn) Call(args ...Value) (Value, error) {
	if f.impl == nil {
		return Value{}, &ArityError{Fn: f.name, Want: -1, Got: len(args)}
	}
	full := args
	if len(f.bound) > 0 {
		full = append(append([]Value(nil), args...), f.bound...)
	}
	if !f.variadic && len(full) != f.arity {
		return Value{}, &ArityError{Fn: f.name, Want: f.arity - len(f.bound), Got: len(args)}
	}
	return f.impl(full)
}

// AsPredicate wraps f into a predicate that coerces any result to Bool by
// truthiness (null/false/zero/empty are false). Useful for feeding a loose
// function into MapIf/ModifyIf, which always read their predicate strictly.
func AsPredicate(f Fn) Fn {
	p := f
	inner := f
	p.impl = func(args []Value) (Value, error) {
		v, err := inner.rawCall(args)
		if err != nil {
			return Value{}, err
		}
		return Bool(truthy(v)), nil
	}
	// The wrapper re-checks nothing itself; keep the declared shape so
	// Call's arity check still fires with the original name.
	return p
}

// rawCall applies the declared-shape check against already-assembled args
// (bound constants included by the caller-side wrapper chain).
func (f Fn) rawCall(full []Value) (Value, error) {
	if f.impl == nil {
		return Value{}, &ArityError{Fn: f.name, Want: -1, Got: len(full)}
	}
	if !f.variadic && len(full) != f.arity {
		return Value{}, &ArityError{Fn: f.name, Want: f.arity - len(f.bound), Got: len(full) - len(f.bound)}
	}
	return f.impl(full)
}
