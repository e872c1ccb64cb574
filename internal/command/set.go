package command

import (
	"strconv"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

func (h *Handler) sadd(args [][]byte) resp.Frame {
	if len(args) < 2 {
		return errArity("sadd")
	}
	n := h.Store.SAdd(bs(args[0]), toStrings(args[1:]))
	return resp.Integer(int64(n))
}

func (h *Handler) scard(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("scard")
	}
	return resp.Integer(int64(h.Store.SCard(bs(args[0]))))
}

func (h *Handler) smembers(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("smembers")
	}
	return resp.Array(bulkFromStrings(h.Store.SMembers(bs(args[0]))))
}

func (h *Handler) srem(args [][]byte) resp.Frame {
	if len(args) < 2 {
		return errArity("srem")
	}
	n := h.Store.SRem(bs(args[0]), toStrings(args[1:]))
	return resp.Integer(int64(n))
}

func (h *Handler) sismember(args [][]byte) resp.Frame {
	if len(args) != 2 {
		return errArity("sismember")
	}
	if h.Store.SIsMember(bs(args[0]), bs(args[1])) {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}

func (h *Handler) sdiff(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("sdiff")
	}
	return resp.Array(bulkFromStrings(h.Store.SDiff(toStrings(args))))
}

func (h *Handler) sinter(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("sinter")
	}
	return resp.Array(bulkFromStrings(h.Store.SInter(toStrings(args))))
}

func (h *Handler) sunion(args [][]byte) resp.Frame {
	if len(args) == 0 {
		return errArity("sunion")
	}
	return resp.Array(bulkFromStrings(h.Store.SUnion(toStrings(args))))
}

func (h *Handler) smove(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("smove")
	}
	if h.Store.SMove(bs(args[0]), bs(args[1]), bs(args[2])) {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}

func (h *Handler) spop(args [][]byte) resp.Frame {
	if len(args) < 1 || len(args) > 2 {
		return errArity("spop")
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
	out := h.Store.SPop(bs(args[0]), count)
	if !multi {
		if len(out) == 0 {
			return resp.NullBulkString()
		}
		return resp.BulkStringFromString(out[0])
	}
	return resp.Array(bulkFromStrings(out))
}

func (h *Handler) srandmember(args [][]byte) resp.Frame {
	if len(args) < 1 || len(args) > 2 {
		return errArity("srandmember")
	}
	count := 1
	multi := false
	if len(args) == 2 {
		n, err := strconv.Atoi(bs(args[1]))
		if err != nil {
			return errNotInteger()
		}
		count = n
		multi = true
	}
	out := h.Store.SRandMember(bs(args[0]), count)
	if !multi {
		if len(out) == 0 {
			return resp.NullBulkString()
		}
		return resp.BulkStringFromString(out[0])
	}
	return resp.Array(bulkFromStrings(out))
}
