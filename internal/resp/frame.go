// Package resp implements the RESP2/RESP3 frame model used to speak the
// wire protocol of the key/value server: a tagged union covering simple
// strings, errors, integers, bulk strings, arrays, null, boolean, double
// and big-number variants, plus the streaming decoder/encoder in
// decode.go and encode.go.
package resp

import (
	"fmt"
	"math/big"
)

// Kind identifies which RESP variant a Frame holds. It is the tag byte
// that prefixes the frame on the wire.
type Kind byte

const (
	KindSimpleString Kind = '+'
	KindError        Kind = '-'
	KindInteger      Kind = ':'
	KindBulkString   Kind = '$'
	KindArray        Kind = '*'
	KindNull         Kind = '_'
	KindBoolean      Kind = '#'
	KindDouble       Kind = ','
	KindBigNumber    Kind = '('
)

// Frame is one complete RESP value. Only the fields relevant to Kind are
// meaningful; Frame is a value type and is treated as immutable once
// constructed.
type Frame struct {
	Kind Kind

	// SimpleString, SimpleError
	Str string

	// Integer
	Int int64

	// BulkString
	Bulk     []byte
	BulkNull bool

	// Array
	Elems     []Frame
	ArrayNull bool

	// Boolean
	Bool bool

	// Double
	Double float64

	// BigNumber
	Big *big.Int
}

func SimpleString(s string) Frame { return Frame{Kind: KindSimpleString, Str: s} }
func SimpleError(s string) Frame  { return Frame{Kind: KindError, Str: s} }
func Errorf(format string, args ...any) Frame {
	return Frame{Kind: KindError, Str: fmt.Sprintf(format, args...)}
}
func Integer(i int64) Frame { return Frame{Kind: KindInteger, Int: i} }

func BulkString(b []byte) Frame { return Frame{Kind: KindBulkString, Bulk: b} }
func BulkStringFromString(s string) Frame {
	return Frame{Kind: KindBulkString, Bulk: []byte(s)}
}
func NullBulkString() Frame { return Frame{Kind: KindBulkString, BulkNull: true} }

func Array(elems []Frame) Frame { return Frame{Kind: KindArray, Elems: elems} }
func NullArray() Frame          { return Frame{Kind: KindArray, ArrayNull: true} }

func Null() Frame           { return Frame{Kind: KindNull} }
func Boolean(b bool) Frame  { return Frame{Kind: KindBoolean, Bool: b} }
func Double(f float64) Frame { return Frame{Kind: KindDouble, Double: f} }
func BigNumber(b *big.Int) Frame { return Frame{Kind: KindBigNumber, Big: b} }

// IsNull reports whether the frame represents any of RESP's null forms:
// a null bulk string, a null array, or the RESP3 Null.
func (f Frame) IsNull() bool {
	switch f.Kind {
	case KindBulkString:
		return f.BulkNull
	case KindArray:
		return f.ArrayNull
	case KindNull:
		return true
	}
	return false
}

// Equal reports structural equality between two frames. Used by the
// codec's round-trip property tests.
func (f Frame) Equal(o Frame) bool {
	if f.Kind != o.Kind {
		return false
	}
	switch f.Kind {
	case KindSimpleString, KindError:
		return f.Str == o.Str
	case KindInteger:
		return f.Int == o.Int
	case KindBulkString:
		if f.BulkNull != o.BulkNull {
			return false
		}
		if f.BulkNull {
			return true
		}
		return string(f.Bulk) == string(o.Bulk)
	case KindArray:
		if f.ArrayNull != o.ArrayNull {
			return false
		}
		if f.ArrayNull {
			return true
		}
		if len(f.Elems) != len(o.Elems) {
			return false
		}
		for i := range f.Elems {
			if !f.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	case KindNull:
		return true
	case KindBoolean:
		return f.Bool == o.Bool
	case KindDouble:
		return f.Double == o.Double
	case KindBigNumber:
		if f.Big == nil || o.Big == nil {
			return f.Big == o.Big
		}
		return f.Big.Cmp(o.Big) == 0
	}
	return false
}
