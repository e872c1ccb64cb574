// Package store implements the five type-segregated, sharded in-memory
// keyspaces (string, hash, list, set, sorted set) unified by a shared
// key-expiration layer. Each shard is an independent mutex-guarded
// bucket; a key's shard is chosen by hashing its name, so all five
// possible type slots for a key plus its expiry entry always live on the
// same shard — the property the design needs to keep single-key commands
// atomic without a global lock.
package store

import (
	"container/list"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Type names returned by TYPE and used to name a key's type slot.
const (
	TypeString = "string"
	TypeHash   = "hash"
	TypeList   = "list"
	TypeSet    = "set"
	TypeZSet   = "zset"
	TypeNone   = "none"
)

type shard struct {
	mu sync.RWMutex

	strings map[string][]byte
	hashes  map[string]map[string][]byte
	lists   map[string]*list.List
	sets    map[string]map[string]struct{}
	zsets   map[string]map[string]float64

	expiry map[string]int64 // absolute unix millis
}

func newShard() *shard {
	return &shard{
		strings: make(map[string][]byte),
		hashes:  make(map[string]map[string][]byte),
		lists:   make(map[string]*list.List),
		sets:    make(map[string]map[string]struct{}),
		zsets:   make(map[string]map[string]float64),
		expiry:  make(map[string]int64),
	}
}

// Store is the process-wide keyspace: a fixed number of independently
// locked shards plus an injectable clock so tests can control expiry
// without sleeping.
type Store struct {
	shards []*shard
	now    func() time.Time
}

// New returns a Store with numShards buckets. numShards is clamped to at
// least 1.
func New(numShards int) *Store {
	if numShards < 1 {
		numShards = 1
	}
	s := &Store{
		shards: make([]*shard, numShards),
		now:    time.Now,
	}
	for i := range s.shards {
		s.shards[i] = newShard()
	}
	return s
}

// WithClock overrides the time source used for expiry checks. Exposed
// for tests exercising lazy expiration deterministically.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

func (s *Store) shardIndex(key string) int {
	h := xxhash.Sum64String(key)
	return int(h % uint64(len(s.shards)))
}

func (s *Store) shardFor(key string) *shard {
	return s.shards[s.shardIndex(key)]
}

// lockTwo locks the shards owning keyA and keyB in a fixed order (by
// shard index) so two-key commands such as SMOVE never deadlock against
// a concurrent command touching the same pair of shards in the opposite
// order. If both keys land on the same shard, it is locked exactly once.
func (s *Store) lockTwo(keyA, keyB string) (shA, shB *shard, unlock func()) {
	ia, ib := s.shardIndex(keyA), s.shardIndex(keyB)
	shA, shB = s.shards[ia], s.shards[ib]
	if ia == ib {
		shA.mu.Lock()
		return shA, shA, shA.mu.Unlock
	}
	first, second := shA, shB
	if ib < ia {
		first, second = shB, shA
	}
	first.mu.Lock()
	second.mu.Lock()
	return shA, shB, func() {
		first.mu.Unlock()
		second.mu.Unlock()
	}
}

// KeyCount returns the total number of live keys across every shard and
// type slot, used by the INFO Keyspace section.
func (s *Store) KeyCount() int {
	return len(s.allLiveKeys())
}
