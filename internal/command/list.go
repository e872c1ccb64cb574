package command

import (
	"strconv"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

func (h *Handler) push(args [][]byte, front bool) resp.Frame {
	if len(args) < 2 {
		return errArity("push")
	}
	values := toStrings(args[1:])
	var n int
	if front {
		n = h.Store.LPush(bs(args[0]), values)
	} else {
		n = h.Store.RPush(bs(args[0]), values)
	}
	return resp.Integer(int64(n))
}

func (h *Handler) pop(args [][]byte, front bool) resp.Frame {
	if len(args) < 1 || len(args) > 2 {
		return errArity("pop")
	}
	count := 1
	multi := false
	if len(args) == 2 {
		n, err := strconv.Atoi(bs(args[1]))
		if err != nil || n < 0 {
			return errInvalid("count")
		}
		count = n
		multi = true
	}
	var out []string
	if front {
		out = h.Store.LPop(bs(args[0]), count)
	} else {
		out = h.Store.RPop(bs(args[0]), count)
	}
	if !multi {
		if len(out) == 0 {
			return resp.NullBulkString()
		}
		return resp.BulkStringFromString(out[0])
	}
	if out == nil {
		return resp.NullArray()
	}
	return resp.Array(bulkFromStrings(out))
}

func (h *Handler) llen(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("llen")
	}
	return resp.Integer(int64(h.Store.LLen(bs(args[0]))))
}

func (h *Handler) lrange(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("lrange")
	}
	start, err1 := strconv.Atoi(bs(args[1]))
	stop, err2 := strconv.Atoi(bs(args[2]))
	if err1 != nil || err2 != nil {
		return errNotInteger()
	}
	return resp.Array(bulkFromStrings(h.Store.LRange(bs(args[0]), start, stop)))
}

func (h *Handler) lrem(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("lrem")
	}
	count, err := strconv.Atoi(bs(args[1]))
	if err != nil {
		return errNotInteger()
	}
	n := h.Store.LRem(bs(args[0]), count, bs(args[2]))
	return resp.Integer(int64(n))
}
