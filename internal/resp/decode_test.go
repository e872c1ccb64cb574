package resp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripCases() []Frame {
	return []Frame{
		SimpleString("OK"),
		SimpleError("ERR boom"),
		Integer(42),
		Integer(-7),
		BulkStringFromString("hello"),
		BulkStringFromString(""),
		NullBulkString(),
		Array([]Frame{BulkStringFromString("GET"), BulkStringFromString("key")}),
		Array(nil),
		NullArray(),
		Null(),
		Boolean(true),
		Boolean(false),
		Double(3.125),
		BigNumber(big.NewInt(123456789012345)),
		Array([]Frame{
			Array([]Frame{Integer(1), Integer(2)}),
			Array([]Frame{Integer(3), NullBulkString()}),
		}),
	}
}

func TestRoundTrip(t *testing.T) {
	d := NewDecoder()
	for _, f := range roundTripCases() {
		encoded := Encode(nil, f)
		got, n, err := d.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.True(t, f.Equal(got), "frame mismatch: want %+v got %+v", f, got)
	}
}

func TestIncrementalDecode(t *testing.T) {
	d := NewDecoder()
	for _, f := range roundTripCases() {
		whole := Encode(nil, f)
		for split := 0; split <= len(whole); split++ {
			b1, b2 := whole[:split], whole[split:]

			// Feed b1 first: either Incomplete (buffer untouched) or,
			// when the split happens to land on a frame boundary,
			// Complete.
			_, _, err := d.Decode(b1)
			if err != nil && err != ErrIncomplete {
				t.Fatalf("split=%d: unexpected error on partial buffer: %v", split, err)
			}

			// Feeding the whole stream always yields the same frame.
			got, n, err := d.Decode(whole)
			require.NoError(t, err)
			assert.Equal(t, len(whole), n)
			assert.True(t, f.Equal(got))
			_ = b2
		}
	}
}

func TestNeverLoseOnIncomplete(t *testing.T) {
	d := NewDecoder()
	full := Encode(nil, Array([]Frame{BulkStringFromString("COMMAND"), BulkStringFromString("DOCS")}))
	for i := 0; i < len(full); i++ {
		partial := append([]byte(nil), full[:i]...)
		before := append([]byte(nil), partial...)
		_, _, err := d.Decode(partial)
		require.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, before, partial, "decoder must not mutate buffer on Incomplete")
	}
}

func TestMalformedInputs(t *testing.T) {
	d := NewDecoder()
	cases := map[string]string{
		"bad tag":            "X5\r\n",
		"bad integer":        ":notanumber\r\n",
		"bad boolean":        "#x\r\n",
		"bad double":         ",notafloat\r\n",
		"bad bignum":         "(abc\r\n",
		"bad null payload":   "_0\r\n",
		"negative bulk len":  "$-5\r\n",
		"bulk missing crlf":  "$3\r\nabcXX",
		"negative array len": "*-5\r\n",
		"non utf8 simple":    "+\xff\xfe\r\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := d.Decode([]byte(input))
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrIncomplete)
		})
	}
}

func TestIncompleteNotMalformed(t *testing.T) {
	d := NewDecoder()
	cases := []string{
		"$5\r\nhel",
		"*2\r\n$3\r\nGET\r\n$4\r\nna",
		"+OK",
		":",
	}
	for _, input := range cases {
		_, _, err := d.Decode([]byte(input))
		require.ErrorIs(t, err, ErrIncomplete)
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	d := NewDecoder()
	buf := []byte{}
	for i := 0; i <= MaxDepth+1; i++ {
		buf = append(buf, []byte("*1\r\n")...)
	}
	buf = append(buf, []byte("$1\r\nx\r\n")...)
	_, _, err := d.Decode(buf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIncomplete)
}
