package command

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/sizzlecar/simple-redis/internal/resp"
	"github.com/sizzlecar/simple-redis/internal/store"
)

// Stats accumulates the counters the INFO command's Clients/Stats
// sections report. It is safe for concurrent use; every field is
// updated with atomic ops rather than a lock since connections never
// need a consistent joint snapshot of all counters at once.
type Stats struct {
	ConnectionsReceived atomic.Int64
	CommandsExecuted    atomic.Int64
}

// Handler executes parsed commands against a shared Store. One Handler
// is shared by every connection; Store and Stats are its only mutable
// state and both are already safe for concurrent use.
type Handler struct {
	Store     *store.Store
	Stats     *Stats
	StartTime time.Time
}

// NewHandler builds a Handler bound to store, ready to serve requests.
func NewHandler(s *store.Store) *Handler {
	return &Handler{
		Store:     s,
		Stats:     &Stats{},
		StartTime: time.Now(),
	}
}

// Dispatch routes one already-parsed command (args[0] is the verb) to
// its handler and returns the reply Frame. It never panics on a
// client-induced error; every error path returns a SimpleError frame
// instead.
func (h *Handler) Dispatch(args [][]byte) resp.Frame {
	h.Stats.CommandsExecuted.Add(1)

	name := strings.ToLower(string(args[0]))
	rest := args[1:]

	switch name {
	// connection / management
	case "ping":
		return resp.SimpleString("PONG")
	case "client", "select":
		return resp.SimpleString("OK")
	case "command":
		return resp.Array(nil)
	case "info":
		return h.info(rest)

	// string commands
	case "set":
		return h.set(rest)
	case "get":
		return h.get(rest)
	case "del":
		return h.del(rest)
	case "exists":
		return h.exists(rest)
	case "incr":
		return h.incrBy(rest, 1)
	case "decr":
		return h.incrBy(rest, -1)
	case "type":
		return h.typeCmd(rest)
	case "keys":
		return h.keys(rest)
	case "expire":
		return h.expire(rest)
	case "ttl":
		return h.ttl(rest)
	case "persist":
		return h.persist(rest)
	case "mget":
		return h.mget(rest)
	case "mset":
		return h.mset(rest)
	case "setex":
		return h.setex(rest)
	case "scan":
		return h.scan(rest)

	// hash commands
	case "hset":
		return h.hset(rest)
	case "hget":
		return h.hget(rest)
	case "hdel":
		return h.hdel(rest)
	case "hgetall":
		return h.hgetall(rest)
	case "hkeys":
		return h.hkeys(rest)
	case "hvals":
		return h.hvals(rest)
	case "hmget":
		return h.hmget(rest)
	case "hmset":
		return h.hmset(rest)

	// list commands
	case "lpush":
		return h.push(rest, true)
	case "rpush":
		return h.push(rest, false)
	case "lpop":
		return h.pop(rest, true)
	case "rpop":
		return h.pop(rest, false)
	case "llen":
		return h.llen(rest)
	case "lrange":
		return h.lrange(rest)
	case "lrem":
		return h.lrem(rest)

	// set commands
	case "sadd":
		return h.sadd(rest)
	case "scard":
		return h.scard(rest)
	case "smembers":
		return h.smembers(rest)
	case "srem":
		return h.srem(rest)
	case "sismember":
		return h.sismember(rest)
	case "sdiff":
		return h.sdiff(rest)
	case "sinter":
		return h.sinter(rest)
	case "sunion":
		return h.sunion(rest)
	case "smove":
		return h.smove(rest)
	case "spop":
		return h.spop(rest)
	case "srandmember":
		return h.srandmember(rest)

	// sorted-set commands
	case "zadd":
		return h.zadd(rest)
	case "zcard":
		return h.zcard(rest)
	case "zscore":
		return h.zscore(rest)
	case "zrem":
		return h.zrem(rest)
	case "zincrby":
		return h.zincrby(rest)
	case "zrange":
		return h.zrange(rest, false)
	case "zrevrange":
		return h.zrange(rest, true)
	case "zrank":
		return h.zrank(rest, false)
	case "zrevrank":
		return h.zrank(rest, true)
	case "zcount":
		return h.zcount(rest)
	case "zremrangebyrank":
		return h.zremrangebyrank(rest)
	case "zremrangebyscore":
		return h.zremrangebyscore(rest)

	default:
		// Unknown commands return OK as a permissive fallback to
		// maximize compatibility with real Redis clients that probe
		// for optional commands.
		return resp.SimpleString("OK")
	}
}
