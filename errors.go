// errors.go — the typed failure surface of the traversal primitives.
//
// WHAT THIS FILE PROVIDES
// =======================
// One concrete error type per failure kind the primitives themselves can
// raise. Errors raised by a caller-supplied function are never wrapped or
// re-typed: they propagate to the caller of the primitive unchanged. Errors
// raised here abort the remaining traversal at the point of detection; side
// effects a walk already performed are not rolled back.
//
// All types are plain structs with positional fields and a formatted
// Error(), so callers can match with errors.As and still log a readable
// message.
package seqfn

import "fmt"

// ArityError reports a function whose parameter shape is incompatible with
// the call pattern (wrong argument count, or a zero Fn with no body).
type ArityError struct {
	Fn   string // registered name, "" for anonymous
	Want int    // declared arity; -1 when the function is not callable at all
	Got  int
}

func (e *ArityError) Error() string {
	name := e.Fn
	if name == "" {
		name = "<fn>"
	}
	if e.Want < 0 {
		return fmt.Sprintf("%s is not callable", name)
	}
	return fmt.Sprintf("%s expects %d argument(s), got %d", name, e.Want, e.Got)
}

// ShapeError reports a typed-output or structural violation: an element
// result that is not a single scalar of the requested kind, or mismatched
// container dimensions. Index is the offending position, -1 when the error
// is not positional.
type ShapeError struct {
	Index int
	Msg   string
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return "shape error: " + e.Msg
	}
	return fmt.Sprintf("shape error at index %d: %s", e.Index, e.Msg)
}

// RecycleError reports parallel inputs whose lengths cannot be reconciled:
// a shorter input's length does not evenly divide the longest.
type RecycleError struct {
	Len    int // offending input length
	Target int // longest input length
}

func (e *RecycleError) Error() string {
	return fmt.Sprintf("cannot recycle length %d to length %d", e.Len, e.Target)
}

// EmptyInputError reports a reduction over an empty sequence with no
// initial value.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + " of empty sequence with no initial value"
}

// PredicateTypeError reports a predicate that returned a non-boolean under
// strict mode.
type PredicateTypeError struct {
	Index int
	Got   ValueTag
}

func (e *PredicateTypeError) Error() string {
	return fmt.Sprintf("predicate returned %s (want Bool) at index %d", e.Got, e.Index)
}

// KeyNotFoundError reports a keyed or positional extraction that found no
// matching name/position in the element at position At, with no default
// supplied.
type KeyNotFoundError struct {
	Key   string // requested name (ByPos == false)
	Pos   int    // requested position (ByPos == true)
	ByPos bool
	At    int // position of the offending element
}

func (e *KeyNotFoundError) Error() string {
	if e.ByPos {
		return fmt.Sprintf("no element at position %d in element %d", e.Pos, e.At)
	}
	return fmt.Sprintf("no element named %q in element %d", e.Key, e.At)
}
