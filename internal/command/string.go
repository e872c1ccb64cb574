package command

import (
	"strconv"
	"strings"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

func (h *Handler) set(args [][]byte) resp.Frame {
	if len(args) != 2 {
		return errArity("set")
	}
	h.Store.SetString(bs(args[0]), args[1])
	return resp.SimpleString("OK")
}

func (h *Handler) get(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("get")
	}
	v, ok := h.Store.GetString(bs(args[0]))
	if !ok {
		return resp.NullBulkString()
	}
	return resp.BulkString(v)
}

func (h *Handler) del(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("del")
	}
	return resp.Integer(int64(h.Store.Del(toStrings(args)...)))
}

func (h *Handler) exists(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("exists")
	}
	return resp.Integer(int64(h.Store.ExistsCount(toStrings(args)...)))
}

func (h *Handler) incrBy(args [][]byte, delta int64) resp.Frame {
	if len(args) != 1 {
		if delta > 0 {
			return errArity("incr")
		}
		return errArity("decr")
	}
	v, err := h.Store.Incr(bs(args[0]), delta)
	if err != nil {
		return errNotInteger()
	}
	return resp.Integer(v)
}

func (h *Handler) typeCmd(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("type")
	}
	return resp.SimpleString(h.Store.TypeOf(bs(args[0])))
}

func (h *Handler) keys(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("keys")
	}
	keys := h.Store.Keys(bs(args[0]))
	return resp.Array(bulkFromStrings(keys))
}

func (h *Handler) expire(args [][]byte) resp.Frame {
	if len(args) != 2 {
		return errArity("expire")
	}
	seconds, err := strconv.ParseInt(bs(args[1]), 10, 64)
	if err != nil || seconds < 0 {
		return errInvalid("expire time")
	}
	if h.Store.Expire(bs(args[0]), seconds) {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}

func (h *Handler) ttl(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("ttl")
	}
	return resp.Integer(h.Store.TTL(bs(args[0])))
}

func (h *Handler) persist(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("persist")
	}
	if h.Store.Persist(bs(args[0])) {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}

func (h *Handler) mget(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("mget")
	}
	vals, oks := h.Store.MGet(toStrings(args)...)
	elems := make([]resp.Frame, len(vals))
	for i := range vals {
		if oks[i] {
			elems[i] = resp.BulkString(vals[i])
		} else {
			elems[i] = resp.NullBulkString()
		}
	}
	return resp.Array(elems)
}

func (h *Handler) mset(args [][]byte) resp.Frame {
	if len(args) == 0 || len(args)%2 != 0 {
		return errArity("mset")
	}
	keys := make([]string, 0, len(args)/2)
	vals := make([][]byte, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		keys = append(keys, bs(args[i]))
		vals = append(vals, args[i+1])
	}
	h.Store.MSet(keys, vals)
	return resp.SimpleString("OK")
}

func (h *Handler) setex(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("setex")
	}
	seconds, err := strconv.ParseUint(bs(args[1]), 10, 64)
	if err != nil {
		return errInvalid("expire time")
	}
	h.Store.SetEx(bs(args[0]), int64(seconds), args[2])
	return resp.SimpleString("OK")
}

func (h *Handler) scan(args [][]byte) resp.Frame {
	if len(args) < 1 {
		return errArity("scan")
	}
	cursor, err := strconv.Atoi(bs(args[0]))
	if err != nil || cursor < 0 {
		return errInvalid("cursor")
	}
	pattern := ""
	count := 0
	rest := args[1:]
	for i := 0; i < len(rest); i += 2 {
		if i+1 >= len(rest) {
			return errArity("scan")
		}
		switch strings.ToLower(bs(rest[i])) {
		case "match":
			pattern = bs(rest[i+1])
		case "count":
			n, err := strconv.Atoi(bs(rest[i+1]))
			if err != nil || n <= 0 {
				return errInvalid("count")
			}
			count = n
		default:
			return errInvalid("syntax")
		}
	}
	next, keys := h.Store.Scan(cursor, pattern, count)
	return resp.Array([]resp.Frame{
		resp.BulkStringFromString(strconv.Itoa(next)),
		resp.Array(bulkFromStrings(keys)),
	})
}

func toStrings(args [][]byte) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = bs(a)
	}
	return out
}

func bulkFromStrings(vals []string) []resp.Frame {
	out := make([]resp.Frame, len(vals))
	for i, v := range vals {
		out[i] = resp.BulkStringFromString(v)
	}
	return out
}
