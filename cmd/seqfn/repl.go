// repl.go — the playground command language.
//
// A line is an operation name followed by whitespace-separated arguments.
// Arguments that look like JSON literals ([...], {...}, numbers, strings,
// true/false/null) are parsed with seqfn.ParseJSON; bare words name a
// registered sample function. Example lines:
//
//	map [1,2,3] double
//	map2 [1,2,3,4] [10,20] add
//	reduce [1,2,3] add
//	keep [1,2,3,4] iseven
//	pmap {"x":[1,2],"y":[10,20]} add
//	pluck [{"a":1},{"a":2}] "a"
//	integrate square 0 1
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seqfn/seqfn"
)

const helpText = `
Playground commands:
  :help              This help
  :fns               List the registered sample functions
  :quit              Exit

Operations (JSON literals for data, bare words for functions):
  map | modify | walk        <seq> <fn> [extra...]
  mapbool|mapint|mapnum|mapstr <seq> <fn>
  map2 | walk2               <seq> <seq> <fn> [extra...]
  imap | iwalk               <seq> <fn>
  pmap | pwalk               <table-object> <fn>
  reduce | accumulate        <seq> <fn> [initial]
  some | every | detect | detectindex | keep | discard
                             <seq> <predicate>
  mapif                      <seq> <predicate> <fn>
  pluck                      <seq-of-objects> <key>
  integrate                  <fn> <a> <b>
`

// token holds one parsed argument: either a value literal or a function
// looked up from the registry.
type token struct {
	val  seqfn.Value
	fn   seqfn.Fn
	isFn bool
}

// splitArgs splits a line into whitespace-separated fields, keeping JSON
// brackets, braces and double-quoted strings together.
func splitArgs(s string) []string {
	var (
		fields []string
		cur    strings.Builder
		depth  int
		inStr  bool
		escape bool
	)
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		if inStr {
			cur.WriteRune(r)
			if escape {
				escape = false
			} else if r == '\\' {
				escape = true
			} else if r == '"' {
				inStr = false
			}
			continue
		}
		switch r {
		case '"':
			inStr = true
			cur.WriteRune(r)
		case '[', '{':
			depth++
			cur.WriteRune(r)
		case ']', '}':
			depth--
			cur.WriteRune(r)
		case ' ', '\t':
			if depth > 0 {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return fields
}

func parseToken(field string, reg map[string]seqfn.Fn) (token, error) {
	c := field[0]
	if c == '[' || c == '{' || c == '"' || c == '-' || (c >= '0' && c <= '9') ||
		field == "true" || field == "false" || field == "null" {
		v, err := seqfn.ParseJSON(field)
		if err != nil {
			return token{}, fmt.Errorf("bad literal %s: %w", field, err)
		}
		return token{val: v}, nil
	}
	f, ok := reg[field]
	if !ok {
		return token{}, fmt.Errorf("unknown function %q (try :fns)", field)
	}
	return token{fn: f, isFn: true}, nil
}

// evalLine parses and dispatches one playground line.
func evalLine(line string, reg map[string]seqfn.Fn) (string, error) {
	fields := splitArgs(line)
	if len(fields) == 0 {
		return "", nil
	}
	op := strings.ToLower(fields[0])
	args := make([]token, 0, len(fields)-1)
	for _, f := range fields[1:] {
		tk, err := parseToken(f, reg)
		if err != nil {
			return "", err
		}
		args = append(args, tk)
	}
	return dispatch(op, args)
}

func needSeq(t token) (*seqfn.Seq, error) {
	if t.isFn || t.val.Tag != seqfn.VTSeq {
		return nil, fmt.Errorf("expected a sequence literal")
	}
	return t.val.Data.(*seqfn.Seq), nil
}

func needFn(t token) (seqfn.Fn, error) {
	if !t.isFn {
		return seqfn.Fn{}, fmt.Errorf("expected a function name")
	}
	return t.fn, nil
}

func extras(args []token) []seqfn.Value {
	out := make([]seqfn.Value, 0, len(args))
	for _, a := range args {
		if a.isFn {
			out = append(out, seqfn.FunVal(a.fn))
		} else {
			out = append(out, a.val)
		}
	}
	return out
}

func dispatch(op string, args []token) (string, error) {
	switch op {

	case "map", "modify", "walk", "imap", "iwalk",
		"mapbool", "mapint", "mapnum", "mapstr":
		if len(args) < 2 {
			return "", fmt.Errorf("%s <seq> <fn> [extra...]", op)
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		f, err := needFn(args[1])
		if err != nil {
			return "", err
		}
		ex := extras(args[2:])
		var out *seqfn.Seq
		switch op {
		case "map":
			out, err = seqfn.Map(x, f, ex...)
		case "modify":
			out, err = seqfn.Modify(x, f, ex...)
		case "walk":
			out, err = seqfn.Walk(x, f, ex...)
		case "imap":
			out, err = seqfn.Imap(x, f, ex...)
		case "iwalk":
			out, err = seqfn.Iwalk(x, f, ex...)
		case "mapbool":
			out, err = seqfn.MapKind(x, seqfn.KindBool, f, ex...)
		case "mapint":
			out, err = seqfn.MapKind(x, seqfn.KindInt, f, ex...)
		case "mapnum":
			out, err = seqfn.MapKind(x, seqfn.KindNum, f, ex...)
		case "mapstr":
			out, err = seqfn.MapKind(x, seqfn.KindStr, f, ex...)
		}
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "map2", "walk2":
		if len(args) < 3 {
			return "", fmt.Errorf("%s <seq> <seq> <fn> [extra...]", op)
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		y, err := needSeq(args[1])
		if err != nil {
			return "", err
		}
		f, err := needFn(args[2])
		if err != nil {
			return "", err
		}
		ex := extras(args[3:])
		var out *seqfn.Seq
		if op == "map2" {
			out, err = seqfn.Map2(x, y, f, ex...)
		} else {
			out, err = seqfn.Walk2(x, y, f, ex...)
		}
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "pmap", "pwalk":
		if len(args) < 2 {
			return "", fmt.Errorf("%s <table-object> <fn>", op)
		}
		tbl, err := tableFrom(args[0])
		if err != nil {
			return "", err
		}
		f, err := needFn(args[1])
		if err != nil {
			return "", err
		}
		if op == "pwalk" {
			if _, err := seqfn.Pwalk(tbl, f, extras(args[2:])...); err != nil {
				return "", err
			}
			return "done", nil
		}
		out, err := seqfn.Pmap(tbl, f, extras(args[2:])...)
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "reduce", "accumulate":
		if len(args) < 2 {
			return "", fmt.Errorf("%s <seq> <fn> [initial]", op)
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		f, err := needFn(args[1])
		if err != nil {
			return "", err
		}
		if op == "reduce" {
			var v seqfn.Value
			if len(args) > 2 {
				v, err = seqfn.ReduceFrom(x, args[2].val, f)
			} else {
				v, err = seqfn.Reduce(x, f)
			}
			if err != nil {
				return "", err
			}
			return seqfn.Format(v), nil
		}
		var out *seqfn.Seq
		if len(args) > 2 {
			out, err = seqfn.AccumulateFrom(x, args[2].val, f)
		} else {
			out, err = seqfn.Accumulate(x, f)
		}
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "some", "every", "detect", "detectindex", "keep", "discard":
		if len(args) < 2 {
			return "", fmt.Errorf("%s <seq> <predicate>", op)
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		p, err := needFn(args[1])
		if err != nil {
			return "", err
		}
		switch op {
		case "some":
			ok, err := seqfn.Some(x, p)
			if err != nil {
				return "", err
			}
			return seqfn.Format(seqfn.Bool(ok)), nil
		case "every":
			ok, err := seqfn.Every(x, p)
			if err != nil {
				return "", err
			}
			return seqfn.Format(seqfn.Bool(ok)), nil
		case "detect":
			v, ok, err := seqfn.Detect(x, p)
			if err != nil {
				return "", err
			}
			if !ok {
				return seqfn.Format(seqfn.Null), nil
			}
			return seqfn.Format(v), nil
		case "detectindex":
			i, err := seqfn.DetectIndex(x, p)
			if err != nil {
				return "", err
			}
			return seqfn.Format(seqfn.Int(int64(i))), nil
		case "keep":
			out, err := seqfn.Keep(x, p)
			if err != nil {
				return "", err
			}
			return seqfn.Format(seqfn.SeqVal(out)), nil
		default:
			out, err := seqfn.Discard(x, p)
			if err != nil {
				return "", err
			}
			return seqfn.Format(seqfn.SeqVal(out)), nil
		}

	case "mapif":
		if len(args) < 3 {
			return "", fmt.Errorf("mapif <seq> <predicate> <fn>")
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		p, err := needFn(args[1])
		if err != nil {
			return "", err
		}
		f, err := needFn(args[2])
		if err != nil {
			return "", err
		}
		out, err := seqfn.MapIf(x, p, f, extras(args[3:])...)
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "pluck":
		if len(args) < 2 {
			return "", fmt.Errorf("pluck <seq-of-objects> <key>")
		}
		x, err := needSeq(args[0])
		if err != nil {
			return "", err
		}
		if args[1].isFn || args[1].val.Tag != seqfn.VTStr {
			return "", fmt.Errorf("pluck key must be a string literal")
		}
		out, err := seqfn.Pluck(x, args[1].val.Data.(string))
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.SeqVal(out)), nil

	case "integrate":
		if len(args) < 3 {
			return "", fmt.Errorf("integrate <fn> <a> <b>")
		}
		f, err := needFn(args[0])
		if err != nil {
			return "", err
		}
		a, err := floatArg(args[1])
		if err != nil {
			return "", err
		}
		b, err := floatArg(args[2])
		if err != nil {
			return "", err
		}
		v, err := seqfn.Integrate(f, a, b, 0)
		if err != nil {
			return "", err
		}
		return seqfn.Format(seqfn.Num(v)), nil

	default:
		return "", fmt.Errorf("unknown operation %q (try :help)", op)
	}
}

func floatArg(t token) (float64, error) {
	if t.isFn {
		return 0, fmt.Errorf("expected a number")
	}
	switch t.val.Tag {
	case seqfn.VTNum:
		return t.val.Data.(float64), nil
	case seqfn.VTInt:
		return float64(t.val.Data.(int64)), nil
	default:
		return 0, fmt.Errorf("expected a number")
	}
}

// tableFrom turns a JSON object-of-arrays token into a Table.
func tableFrom(t token) (*seqfn.Table, error) {
	if t.isFn || t.val.Tag != seqfn.VTSeq {
		return nil, fmt.Errorf("expected an object of equal-length arrays")
	}
	s := t.val.Data.(*seqfn.Seq)
	if !s.HasNames() {
		return nil, fmt.Errorf("expected an object of equal-length arrays")
	}
	cols := make([]*seqfn.Seq, s.Len())
	for i, el := range s.Elems {
		if el.Tag != seqfn.VTSeq {
			return nil, fmt.Errorf("column %q is not an array", s.Names[i])
		}
		cols[i] = el.Data.(*seqfn.Seq)
	}
	return seqfn.NamedTable(s.Names, cols)
}

func listFns(reg map[string]seqfn.Fn) string {
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "  ")
}
