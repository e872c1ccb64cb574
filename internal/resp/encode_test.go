package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeKnownShapes(t *testing.T) {
	cases := []struct {
		name string
		f    Frame
		want string
	}{
		{"ok", SimpleString("OK"), "+OK\r\n"},
		{"error", SimpleError("ERR value is not an integer or out of range"), "-ERR value is not an integer or out of range\r\n"},
		{"integer", Integer(1), ":1\r\n"},
		{"bulk", BulkStringFromString("bar"), "$3\r\nbar\r\n"},
		{"null bulk", NullBulkString(), "$-1\r\n"},
		{"null array", NullArray(), "*-1\r\n"},
		{"resp3 null", Null(), "_-1\r\n"},
		{
			"array of bulks",
			Array([]Frame{BulkStringFromString("c"), BulkStringFromString("b"), BulkStringFromString("a")}),
			"*3\r\n$1\r\nc\r\n$1\r\nb\r\n$1\r\na\r\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Encode(nil, tc.f)
			assert.Equal(t, tc.want, string(got))
		})
	}
}
