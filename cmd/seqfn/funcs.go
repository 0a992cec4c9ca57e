// funcs.go — the sample function registry the playground dispatches on.
package main

import (
	"fmt"
	"strings"

	"github.com/seqfn/seqfn"
)

func intOf(v seqfn.Value) (int64, bool) {
	if v.Tag == seqfn.VTInt {
		return v.Data.(int64), true
	}
	return 0, false
}

func numOf(v seqfn.Value) (float64, bool) {
	switch v.Tag {
	case seqfn.VTInt:
		return float64(v.Data.(int64)), true
	case seqfn.VTNum:
		return v.Data.(float64), true
	default:
		return 0, false
	}
}

// arith wraps a binary numeric op, keeping Int when both operands are Int.
func arith(name string, iop func(a, b int64) int64, fop func(a, b float64) float64) seqfn.Fn {
	return seqfn.NewFn(name, 2, func(args []seqfn.Value) (seqfn.Value, error) {
		if a, ok := intOf(args[0]); ok {
			if b, ok := intOf(args[1]); ok {
				return seqfn.Int(iop(a, b)), nil
			}
		}
		a, aok := numOf(args[0])
		b, bok := numOf(args[1])
		if !aok || !bok {
			return seqfn.Value{}, fmt.Errorf("%s: non-numeric argument", name)
		}
		return seqfn.Num(fop(a, b)), nil
	})
}

func unaryNum(name string, iop func(int64) int64, fop func(float64) float64) seqfn.Fn {
	return seqfn.NewFn(name, 1, func(args []seqfn.Value) (seqfn.Value, error) {
		if a, ok := intOf(args[0]); ok {
			return seqfn.Int(iop(a)), nil
		}
		a, ok := numOf(args[0])
		if !ok {
			return seqfn.Value{}, fmt.Errorf("%s: non-numeric argument", name)
		}
		return seqfn.Num(fop(a)), nil
	})
}

func numPred(name string, p func(float64) bool) seqfn.Fn {
	return seqfn.NewFn(name, 1, func(args []seqfn.Value) (seqfn.Value, error) {
		a, ok := numOf(args[0])
		if !ok {
			return seqfn.Value{}, fmt.Errorf("%s: non-numeric argument", name)
		}
		return seqfn.Bool(p(a)), nil
	})
}

func builtins() map[string]seqfn.Fn {
	reg := map[string]seqfn.Fn{}
	add := func(f seqfn.Fn) { reg[f.Name()] = f }

	add(arith("add", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }))
	add(arith("sub", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }))
	add(arith("mul", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }))
	add(unaryNum("double", func(a int64) int64 { return 2 * a }, func(a float64) float64 { return 2 * a }))
	add(unaryNum("square", func(a int64) int64 { return a * a }, func(a float64) float64 { return a * a }))
	add(unaryNum("negate", func(a int64) int64 { return -a }, func(a float64) float64 { return -a }))

	add(numPred("iseven", func(a float64) bool { return int64(a)%2 == 0 && a == float64(int64(a)) }))
	add(numPred("isodd", func(a float64) bool { return int64(a)%2 != 0 && a == float64(int64(a)) }))
	add(numPred("ispos", func(a float64) bool { return a > 0 }))
	add(numPred("isneg", func(a float64) bool { return a < 0 }))

	add(seqfn.NewFn("length", 1, func(args []seqfn.Value) (seqfn.Value, error) {
		switch args[0].Tag {
		case seqfn.VTStr:
			return seqfn.Int(int64(len(args[0].Data.(string)))), nil
		case seqfn.VTSeq:
			return seqfn.Int(int64(args[0].Data.(*seqfn.Seq).Len())), nil
		default:
			return seqfn.Int(1), nil
		}
	}))
	add(seqfn.NewFn("upper", 1, func(args []seqfn.Value) (seqfn.Value, error) {
		if args[0].Tag != seqfn.VTStr {
			return seqfn.Value{}, fmt.Errorf("upper: want a string")
		}
		return seqfn.Str(strings.ToUpper(args[0].Data.(string))), nil
	}))
	add(seqfn.NewFn("lower", 1, func(args []seqfn.Value) (seqfn.Value, error) {
		if args[0].Tag != seqfn.VTStr {
			return seqfn.Value{}, fmt.Errorf("lower: want a string")
		}
		return seqfn.Str(strings.ToLower(args[0].Data.(string))), nil
	}))

	// paste(sep, parts...) style joiner for imap demos: args joined with " ".
	add(seqfn.VariadicFn("paste", func(args []seqfn.Value) (seqfn.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if a.Tag == seqfn.VTStr {
				parts[i] = a.Data.(string)
			} else {
				parts[i] = seqfn.Format(a)
			}
		}
		return seqfn.Str(strings.Join(parts, " ")), nil
	}))

	// show prints its argument; handy with walk/pwalk.
	add(seqfn.VariadicFn("show", func(args []seqfn.Value) (seqfn.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = seqfn.Format(a)
		}
		fmt.Println(green(strings.Join(parts, " ")))
		return seqfn.Null, nil
	}))

	return reg
}
