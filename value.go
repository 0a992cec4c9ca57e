// value.go — the runtime value model shared by every traversal primitive.
//
// WHAT THIS FILE PROVIDES
// =======================
// The universal dynamic carrier (`Value` + `ValueTag`), the constructors the
// rest of the package and its callers build values with, the `Kind`
// enumeration used by the typed-output mappers, and the small amount of
// shared value machinery (conformance, equality, truthiness) the primitives
// lean on.
//
// Public API:
//   - ValueTag / Value and the ctors Bool, Int, Num, Str, SeqVal, FunVal.
//   - Null — the singleton null value.
//   - Kind — discriminated result kind for the typed mappers (KindBool,
//     KindInt, KindNum, KindStr). Kinds are checked explicitly at call time;
//     there is no reflection-based dispatch.
//   - Equal — deep structural equality over values (names included for
//     sequences; functions compare by identity).
//
// Everything here is transient: values are built per call and carry no
// shared mutable state between invocations.
package seqfn

import "strconv"

// ValueTag enumerates the runtime kinds a Value may hold. The tag determines
// which Go type Value.Data carries.
type ValueTag int

const (
	VTNull ValueTag = iota // null (no payload)
	VTBool                 // bool
	VTInt                  // int64
	VTNum                  // float64
	VTStr                  // string
	VTSeq                  // *Seq (ordered, possibly-named elements)
	VTFun                  // Fn (opaque callable)
)

// String names the tag for diagnostics ("Null", "Int", "Seq", ...).
func (t ValueTag) String() string {
	switch t {
	case VTNull:
		return "Null"
	case VTBool:
		return "Bool"
	case VTInt:
		return "Int"
	case VTNum:
		return "Num"
	case VTStr:
		return "Str"
	case VTSeq:
		return "Seq"
	case VTFun:
		return "Fn"
	default:
		return "Unknown"
	}
}

// Value is the dynamic carrier every primitive consumes and produces.
//
// Invariants:
//   - When Tag==VTNull, Data is nil.
//   - When Tag==VTSeq, Data is *Seq.
//   - When Tag==VTFun, Data is Fn.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// Primitive constructors.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value   { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }
func SeqVal(s *Seq) Value { return Value{Tag: VTSeq, Data: s} }
func FunVal(f Fn) Value   { return Value{Tag: VTFun, Data: f} }

// String renders a human-friendly representation (see render.go).
func (v Value) String() string { return Format(v) }

// Kind is the declared scalar kind a typed-output mapper may request.
// Conformance is checked per element at call time; a non-conforming result
// is a *ShapeError naming the offending index.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindNum
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindNum:
		return "Num"
	case KindStr:
		return "Str"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// conformKind reports whether v is a single scalar of kind k, returning the
// (possibly widened) value to store. VTInt widens to KindNum; nothing else
// crosses kinds. A one-element sequence is unwrapped before checking.
func conformKind(v Value, k Kind) (Value, bool) {
	if v.Tag == VTSeq {
		s := v.Data.(*Seq)
		if s.Len() != 1 {
			return Value{}, false
		}
		v = s.Elems[0]
		if v.Tag == VTSeq {
			return Value{}, false
		}
	}
	switch k {
	case KindBool:
		if v.Tag == VTBool {
			return v, true
		}
	case KindInt:
		if v.Tag == VTInt {
			return v, true
		}
	case KindNum:
		if v.Tag == VTNum {
			return v, true
		}
		if v.Tag == VTInt {
			return Num(float64(v.Data.(int64))), true
		}
	case KindStr:
		if v.Tag == VTStr {
			return v, true
		}
	}
	return Value{}, false
}

// Equal is deep structural equality. Sequences compare elementwise and by
// names; functions compare by registered name (anonymous functions are never
// equal to anything but themselves being the zero Fn).
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTSeq:
		sa, sb := a.Data.(*Seq), b.Data.(*Seq)
		if sa.Len() != sb.Len() || sa.HasNames() != sb.HasNames() {
			return false
		}
		for i := range sa.Elems {
			if sa.HasNames() && sa.Names[i] != sb.Names[i] {
				return false
			}
			if !Equal(sa.Elems[i], sb.Elems[i]) {
				return false
			}
		}
		return true
	case VTFun:
		fa, fb := a.Data.(Fn), b.Data.(Fn)
		return fa.name != "" && fa.name == fb.name
	default:
		return false
	}
}

// truthy coerces a value to bool under the permissive predicate mode:
// null and false are false; zero numbers, empty strings and empty sequences
// are false; everything else is true.
func truthy(v Value) bool {
	switch v.Tag {
	case VTNull:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTNum:
		return v.Data.(float64) != 0
	case VTStr:
		return v.Data.(string) != ""
	case VTSeq:
		return v.Data.(*Seq).Len() > 0
	default:
		return true
	}
}
