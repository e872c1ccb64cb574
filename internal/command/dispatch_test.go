package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlecar/simple-redis/internal/resp"
	"github.com/sizzlecar/simple-redis/internal/store"
)

func newTestHandler() *Handler {
	return NewHandler(store.New(4))
}

func cmd(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

func TestPingAndUnknownCommand(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, resp.SimpleString("PONG"), h.Dispatch(cmd("PING")))
	assert.Equal(t, resp.SimpleString("OK"), h.Dispatch(cmd("FROB")))
}

func TestSetGetRoundTrip(t *testing.T) {
	h := newTestHandler()
	require.Equal(t, resp.SimpleString("OK"), h.Dispatch(cmd("SET", "k", "v")))
	assert.Equal(t, resp.BulkStringFromString("v"), h.Dispatch(cmd("GET", "k")))
	assert.Equal(t, resp.NullBulkString(), h.Dispatch(cmd("GET", "missing")))
}

func TestSetArityError(t *testing.T) {
	h := newTestHandler()
	got := h.Dispatch(cmd("SET", "k"))
	require.Equal(t, resp.KindError, got.Kind)
	assert.Contains(t, got.Str, "wrong number of arguments")
}

func TestIncrDecrAndNotInteger(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("INCR", "ctr")))
	assert.Equal(t, resp.Integer(2), h.Dispatch(cmd("INCR", "ctr")))
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("DECR", "ctr")))

	h.Dispatch(cmd("SET", "notnum", "abc"))
	got := h.Dispatch(cmd("INCR", "notnum"))
	require.Equal(t, resp.KindError, got.Kind)
}

func TestTypeAcrossCommands(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("LPUSH", "mylist", "a"))
	assert.Equal(t, resp.SimpleString("list"), h.Dispatch(cmd("TYPE", "mylist")))
	assert.Equal(t, resp.SimpleString("none"), h.Dispatch(cmd("TYPE", "missing")))
}

func TestHashCommands(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, resp.Integer(2), h.Dispatch(cmd("HSET", "h", "f1", "v1", "f2", "v2")))
	assert.Equal(t, resp.BulkStringFromString("v1"), h.Dispatch(cmd("HGET", "h", "f1")))
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("HDEL", "h", "f1")))
}

func TestListCommands(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("RPUSH", "l", "a", "b", "c"))
	assert.Equal(t, resp.Integer(3), h.Dispatch(cmd("LLEN", "l")))
	got := h.Dispatch(cmd("LRANGE", "l", "0", "-1"))
	require.Equal(t, resp.KindArray, got.Kind)
	assert.Len(t, got.Elems, 3)
}

func TestSetCommands(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("SADD", "s", "a", "b"))
	assert.Equal(t, resp.Integer(2), h.Dispatch(cmd("SCARD", "s")))
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("SISMEMBER", "s", "a")))
	assert.Equal(t, resp.Integer(0), h.Dispatch(cmd("SISMEMBER", "s", "z")))
}

func TestZSetCommands(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("ZADD", "z", "1", "a", "2", "b"))
	assert.Equal(t, resp.Integer(2), h.Dispatch(cmd("ZCARD", "z")))
	got := h.Dispatch(cmd("ZRANGE", "z", "0", "-1"))
	require.Equal(t, resp.KindArray, got.Kind)
	require.Len(t, got.Elems, 2)
	assert.Equal(t, "a", string(got.Elems[0].Bulk))
	assert.Equal(t, "b", string(got.Elems[1].Bulk))
}

func TestExpireTTLPersist(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("SET", "k", "v"))
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("EXPIRE", "k", "100")))
	got := h.Dispatch(cmd("TTL", "k"))
	require.Equal(t, resp.KindInteger, got.Kind)
	assert.Greater(t, got.Int, int64(0))
	assert.Equal(t, resp.Integer(1), h.Dispatch(cmd("PERSIST", "k")))
	assert.Equal(t, resp.Integer(-1), h.Dispatch(cmd("TTL", "k")))
}

func TestScanPaging(t *testing.T) {
	h := newTestHandler()
	h.Dispatch(cmd("SET", "a", "1"))
	h.Dispatch(cmd("SET", "b", "1"))
	got := h.Dispatch(cmd("SCAN", "0", "COUNT", "10"))
	require.Equal(t, resp.KindArray, got.Kind)
	require.Len(t, got.Elems, 2)
	assert.Equal(t, "0", string(got.Elems[0].Bulk))
}
