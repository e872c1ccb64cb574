package command

import "github.com/sizzlecar/simple-redis/internal/resp"

func (h *Handler) hset(args [][]byte) resp.Frame {
	if len(args) < 3 || len(args)%2 == 0 {
		return errArity("hset")
	}
	fields, values := pairsToStrings(args[1:])
	n := h.Store.HSet(bs(args[0]), fields, values)
	return resp.Integer(int64(n))
}

func (h *Handler) hget(args [][]byte) resp.Frame {
	if len(args) != 2 {
		return errArity("hget")
	}
	v, ok := h.Store.HGet(bs(args[0]), bs(args[1]))
	if !ok {
		return resp.NullBulkString()
	}
	return resp.BulkString(v)
}

func (h *Handler) hdel(args [][]byte) resp.Frame {
	if len(args) < 2 {
		return errArity("hdel")
	}
	n := h.Store.HDel(bs(args[0]), toStrings(args[1:]))
	return resp.Integer(int64(n))
}

func (h *Handler) hgetall(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("hgetall")
	}
	fields, values := h.Store.HGetAll(bs(args[0]))
	out := make([]resp.Frame, 0, 2*len(fields))
	for i := range fields {
		out = append(out, resp.BulkStringFromString(fields[i]), resp.BulkStringFromString(values[i]))
	}
	return resp.Array(out)
}

func (h *Handler) hkeys(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("hkeys")
	}
	return resp.Array(bulkFromStrings(h.Store.HKeys(bs(args[0]))))
}

func (h *Handler) hvals(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("hvals")
	}
	return resp.Array(bulkFromStrings(h.Store.HVals(bs(args[0]))))
}

func (h *Handler) hmget(args [][]byte) resp.Frame {
	if len(args) < 2 {
		return errArity("hmget")
	}
	vals, oks := h.Store.HMGet(bs(args[0]), toStrings(args[1:]))
	out := make([]resp.Frame, len(vals))
	for i := range vals {
		if oks[i] {
			out[i] = resp.BulkString(vals[i])
		} else {
			out[i] = resp.NullBulkString()
		}
	}
	return resp.Array(out)
}

func (h *Handler) hmset(args [][]byte) resp.Frame {
	if len(args) < 3 || len(args)%2 == 0 {
		return errArity("hmset")
	}
	fields, values := pairsToStrings(args[1:])
	h.Store.HMSet(bs(args[0]), fields, values)
	return resp.SimpleString("OK")
}

func pairsToStrings(args [][]byte) (fields, values []string) {
	fields = make([]string, 0, len(args)/2)
	values = make([]string, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		fields = append(fields, bs(args[i]))
		values = append(values, bs(args[i+1]))
	}
	return fields, values
}
