package resp

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Encode serializes f onto dst, appending bytes, and returns the grown
// slice. It is total: every Frame value constructible by this package
// encodes without error.
func Encode(dst []byte, f Frame) []byte {
	switch f.Kind {
	case KindSimpleString:
		dst = append(dst, '+')
		dst = append(dst, f.Str...)
		return append(dst, '\r', '\n')
	case KindError:
		dst = append(dst, '-')
		dst = append(dst, f.Str...)
		return append(dst, '\r', '\n')
	case KindInteger:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, f.Int, 10)
		return append(dst, '\r', '\n')
	case KindBulkString:
		if f.BulkNull {
			return append(dst, '$', '-', '1', '\r', '\n')
		}
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(f.Bulk)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, f.Bulk...)
		return append(dst, '\r', '\n')
	case KindArray:
		if f.ArrayNull {
			return append(dst, '*', '-', '1', '\r', '\n')
		}
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(f.Elems)), 10)
		dst = append(dst, '\r', '\n')
		for _, elem := range f.Elems {
			dst = Encode(dst, elem)
		}
		return dst
	case KindNull:
		return append(dst, '_', '-', '1', '\r', '\n')
	case KindBoolean:
		dst = append(dst, '#')
		if f.Bool {
			dst = append(dst, 't')
		} else {
			dst = append(dst, 'f')
		}
		return append(dst, '\r', '\n')
	case KindDouble:
		dst = append(dst, ',')
		dst = strconv.AppendFloat(dst, f.Double, 'g', -1, 64)
		return append(dst, '\r', '\n')
	case KindBigNumber:
		dst = append(dst, '(')
		if f.Big != nil {
			dst = f.Big.Append(dst, 10)
		} else {
			dst = append(dst, '0')
		}
		return append(dst, '\r', '\n')
	}
	return dst
}

// EncodeBuffer renders f into a pooled bytebufferpool.ByteBuffer. The
// caller must return it with bytebufferpool.Put when done; this keeps
// connection writes off the allocator on the common path (see
// internal/server/conn.go).
func EncodeBuffer(f Frame) *bytebufferpool.ByteBuffer {
	bb := bytebufferpool.Get()
	bb.B = Encode(bb.B, f)
	return bb
}
