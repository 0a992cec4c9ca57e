// json.go — JSON ⇄ Value bridge.
//
// WHAT THIS FILE PROVIDES
// =======================
// Decoding and encoding between JSON text and the runtime value model:
//
//   - ParseJSON(src) (Value, error)
//       Arrays become unnamed sequences, objects become named sequences
//       with the object's key order preserved, numbers decode as Int when
//       they carry no fraction/exponent and fit int64, else Num.
//   - EncodeJSON(v) ([]byte, error)
//       The inverse: named sequences emit objects (insertion order kept),
//       unnamed sequences emit arrays. Functions are not serializable.
//
// Decoding walks the json.Decoder token stream instead of unmarshalling
// into Go maps: a Go map would drop the key order that the named-sequence
// container is required to keep. Numbers are read with UseNumber so large
// integers survive the round trip.
package seqfn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseJSON decodes one JSON document into a Value. Trailing non-space
// content after the document is an error.
func ParseJSON(src string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	// Reject a second document.
	if dec.More() {
		return Value{}, fmt.Errorf("unexpected content after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return numberValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			s := &Seq{}
			for dec.More() {
				el, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				s.Elems = append(s.Elems, el)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return SeqVal(s), nil
		case '{':
			s := &Seq{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key := kt.(string)
				el, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				s.Elems = append(s.Elems, el)
				s.Names = append(s.Names, key)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return SeqVal(s), nil
		}
	}
	return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

// numberValue prefers Int for integer-looking literals that fit int64.
func numberValue(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		// Out-of-range literal: keep the text rather than lose it.
		return Str(s)
	}
	return Num(f)
}

// EncodeJSON renders v as compact JSON. Named sequences emit objects in
// insertion order; functions (and any future non-data tags) fail.
func EncodeJSON(v Value) ([]byte, error) {
	var b bytes.Buffer
	if err := encodeValue(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeValue(b *bytes.Buffer, v Value) error {
	switch v.Tag {
	case VTNull:
		b.WriteString("null")
	case VTBool:
		b.WriteString(strconv.FormatBool(v.Data.(bool)))
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTNum:
		raw, err := json.Marshal(v.Data.(float64))
		if err != nil {
			return err
		}
		b.Write(raw)
	case VTStr:
		raw, err := json.Marshal(v.Data.(string))
		if err != nil {
			return err
		}
		b.Write(raw)
	case VTSeq:
		s := v.Data.(*Seq)
		if s.HasNames() {
			b.WriteByte('{')
			for i := range s.Elems {
				if i > 0 {
					b.WriteByte(',')
				}
				key, err := json.Marshal(s.Names[i])
				if err != nil {
					return err
				}
				b.Write(key)
				b.WriteByte(':')
				if err := encodeValue(b, s.Elems[i]); err != nil {
					return err
				}
			}
			b.WriteByte('}')
			return nil
		}
		b.WriteByte('[')
		for i := range s.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := encodeValue(b, s.Elems[i]); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	default:
		return fmt.Errorf("value tag %s is not JSON-serializable", v.Tag)
	}
	return nil
}
