package command

import (
	"strconv"
	"strings"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

func (h *Handler) zadd(args [][]byte) resp.Frame {
	if len(args) < 3 || len(args)%2 == 0 {
		return errArity("zadd")
	}
	pairs := args[1:]
	scores := make([]float64, 0, len(pairs)/2)
	members := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		sc, err := strconv.ParseFloat(bs(pairs[i]), 64)
		if err != nil {
			return errInvalid("score")
		}
		scores = append(scores, sc)
		members = append(members, bs(pairs[i+1]))
	}
	n := h.Store.ZAdd(bs(args[0]), scores, members)
	return resp.Integer(int64(n))
}

func (h *Handler) zcard(args [][]byte) resp.Frame {
	if len(args) != 1 {
		return errArity("zcard")
	}
	return resp.Integer(int64(h.Store.ZCard(bs(args[0]))))
}

func (h *Handler) zscore(args [][]byte) resp.Frame {
	if len(args) != 2 {
		return errArity("zscore")
	}
	score, ok := h.Store.ZScore(bs(args[0]), bs(args[1]))
	if !ok {
		return resp.NullBulkString()
	}
	return resp.BulkStringFromString(formatScore(score))
}

func (h *Handler) zrem(args [][]byte) resp.Frame {
	if len(args) < 2 {
		return errArity("zrem")
	}
	n := h.Store.ZRem(bs(args[0]), toStrings(args[1:]))
	return resp.Integer(int64(n))
}

func (h *Handler) zincrby(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("zincrby")
	}
	inc, err := strconv.ParseFloat(bs(args[1]), 64)
	if err != nil {
		return errInvalid("increment")
	}
	score := h.Store.ZIncrBy(bs(args[0]), inc, bs(args[2]))
	return resp.BulkStringFromString(formatScore(score))
}

func (h *Handler) zrange(args [][]byte, reverse bool) resp.Frame {
	if len(args) < 3 {
		return errArity("zrange")
	}
	start, err1 := strconv.Atoi(bs(args[1]))
	stop, err2 := strconv.Atoi(bs(args[2]))
	if err1 != nil || err2 != nil {
		return errNotInteger()
	}
	withScores := false
	if len(args) == 4 {
		if !strings.EqualFold(bs(args[3]), "withscores") {
			return errInvalid("syntax")
		}
		withScores = true
	} else if len(args) > 4 {
		return errArity("zrange")
	}
	var members []string
	var scores []float64
	if reverse {
		members, scores = h.Store.ZRevRange(bs(args[0]), start, stop, withScores)
	} else {
		members, scores = h.Store.ZRange(bs(args[0]), start, stop, withScores)
	}
	return zMembersReply(members, scores, withScores)
}

func (h *Handler) zrank(args [][]byte, reverse bool) resp.Frame {
	if len(args) != 2 {
		return errArity("zrank")
	}
	var rank int
	var ok bool
	if reverse {
		rank, ok = h.Store.ZRevRank(bs(args[0]), bs(args[1]))
	} else {
		rank, ok = h.Store.ZRank(bs(args[0]), bs(args[1]))
	}
	if !ok {
		return resp.NullBulkString()
	}
	return resp.Integer(int64(rank))
}

func (h *Handler) zcount(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("zcount")
	}
	min, err1 := strconv.ParseFloat(bs(args[1]), 64)
	max, err2 := strconv.ParseFloat(bs(args[2]), 64)
	if err1 != nil || err2 != nil {
		return errInvalid("min or max")
	}
	return resp.Integer(int64(h.Store.ZCount(bs(args[0]), min, max)))
}

func (h *Handler) zremrangebyrank(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("zremrangebyrank")
	}
	start, err1 := strconv.Atoi(bs(args[1]))
	stop, err2 := strconv.Atoi(bs(args[2]))
	if err1 != nil || err2 != nil {
		return errNotInteger()
	}
	return resp.Integer(int64(h.Store.ZRemRangeByRank(bs(args[0]), start, stop)))
}

func (h *Handler) zremrangebyscore(args [][]byte) resp.Frame {
	if len(args) != 3 {
		return errArity("zremrangebyscore")
	}
	min, err1 := strconv.ParseFloat(bs(args[1]), 64)
	max, err2 := strconv.ParseFloat(bs(args[2]), 64)
	if err1 != nil || err2 != nil {
		return errInvalid("min or max")
	}
	return resp.Integer(int64(h.Store.ZRemRangeByScore(bs(args[0]), min, max)))
}

func zMembersReply(members []string, scores []float64, withScores bool) resp.Frame {
	if !withScores {
		return resp.Array(bulkFromStrings(members))
	}
	out := make([]resp.Frame, 0, 2*len(members))
	for i, m := range members {
		out = append(out, resp.BulkStringFromString(m), resp.BulkStringFromString(formatScore(scores[i])))
	}
	return resp.Array(out)
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
