package store

import "sort"

type zmember struct {
	member string
	score  float64
}

func getOrCreateZSetLocked(sh *shard, key string) map[string]float64 {
	z, ok := sh.zsets[key]
	if !ok {
		clearOtherTypeSlotsLocked(sh, key, TypeZSet)
		z = make(map[string]float64)
		sh.zsets[key] = z
	}
	return z
}

// sortedLocked returns the members of the zset at key ordered by score
// ascending, breaking ties lexicographically by member name, the
// ordering used by every range/rank operation below.
func sortedLocked(sh *shard, key string) []zmember {
	z := sh.zsets[key]
	out := make([]zmember, 0, len(z))
	for m, sc := range z {
		out = append(out, zmember{m, sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score < out[j].score
		}
		return out[i].member < out[j].member
	})
	return out
}

// ZAdd inserts or updates each (score, member) pair in scores/members,
// returning the number of members that were newly inserted.
func (s *Store) ZAdd(key string, scores []float64, members []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	z := getOrCreateZSetLocked(sh, key)
	added := 0
	for i, m := range members {
		if _, ok := z[m]; !ok {
			added++
		}
		z[m] = scores[i]
	}
	return added
}

// ZIncrBy adds increment to member's score (treating an absent member
// as score 0), creating the zset/member if needed, and returns the new
// score.
func (s *Store) ZIncrBy(key string, increment float64, member string) float64 {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	z := getOrCreateZSetLocked(sh, key)
	z[member] += increment
	return z[member]
}

// ZCard returns the cardinality of the zset at key, or 0 if missing.
func (s *Store) ZCard(key string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return len(sh.zsets[key])
}

// ZScore returns member's score in the zset at key.
func (s *Store) ZScore(key, member string) (score float64, ok bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	score, ok = sh.zsets[key][member]
	return score, ok
}

// ZRem removes each named member from the zset at key, deleting the key
// if it empties. Returns the count actually removed.
func (s *Store) ZRem(key string, members []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	z, ok := sh.zsets[key]
	if !ok {
		return 0
	}
	removed := 0
	for _, m := range members {
		if _, exists := z[m]; exists {
			delete(z, m)
			removed++
		}
	}
	if len(z) == 0 {
		removeKeyLocked(sh, key)
	}
	return removed
}

// ZRange returns members (ascending by score) in the inclusive
// [start, stop] rank range, Redis-style negative indices counted from
// the tail. withScores also returns each member's score.
func (s *Store) ZRange(key string, start, stop int, withScores bool) (members []string, scores []float64) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	ordered := sortedLocked(sh, key)
	return sliceRange(ordered, start, stop, false, withScores)
}

// ZRevRange is ZRange in descending score order.
func (s *Store) ZRevRange(key string, start, stop int, withScores bool) (members []string, scores []float64) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	ordered := sortedLocked(sh, key)
	return sliceRange(ordered, start, stop, true, withScores)
}

func sliceRange(ordered []zmember, start, stop int, reverse, withScores bool) (members []string, scores []float64) {
	if reverse {
		reversed := make([]zmember, len(ordered))
		for i, m := range ordered {
			reversed[len(ordered)-1-i] = m
		}
		ordered = reversed
	}
	n := len(ordered)
	start = normalizeIndex(start, n)
	stop = normalizeIndex(stop, n)
	if start < 0 {
		start = 0
	}
	if stop > n-1 {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil, nil
	}
	members = make([]string, 0, stop-start+1)
	if withScores {
		scores = make([]float64, 0, stop-start+1)
	}
	for i := start; i <= stop; i++ {
		members = append(members, ordered[i].member)
		if withScores {
			scores = append(scores, ordered[i].score)
		}
	}
	return members, scores
}

// ZRank returns member's 0-based rank in ascending score order.
func (s *Store) ZRank(key, member string) (rank int, ok bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	ordered := sortedLocked(sh, key)
	for i, m := range ordered {
		if m.member == member {
			return i, true
		}
	}
	return 0, false
}

// ZRevRank returns member's 0-based rank in descending score order.
func (s *Store) ZRevRank(key, member string) (rank int, ok bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	ordered := sortedLocked(sh, key)
	for i, m := range ordered {
		if m.member == member {
			return len(ordered) - 1 - i, true
		}
	}
	return 0, false
}

// ZCount returns the number of members with score in [min, max].
func (s *Store) ZCount(key string, min, max float64) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	count := 0
	for _, sc := range sh.zsets[key] {
		if sc >= min && sc <= max {
			count++
		}
	}
	return count
}

// ZRemRangeByRank removes members whose ascending rank falls in the
// inclusive [start, stop] range, deleting the key if it empties.
// Returns the count removed.
func (s *Store) ZRemRangeByRank(key string, start, stop int) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	z, ok := sh.zsets[key]
	if !ok {
		return 0
	}
	ordered := sortedLocked(sh, key)
	members, _ := sliceRange(ordered, start, stop, false, false)
	for _, m := range members {
		delete(z, m)
	}
	if len(z) == 0 {
		removeKeyLocked(sh, key)
	}
	return len(members)
}

// ZRemRangeByScore removes members with score in [min, max], deleting
// the key if it empties. Returns the count removed.
func (s *Store) ZRemRangeByScore(key string, min, max float64) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	z, ok := sh.zsets[key]
	if !ok {
		return 0
	}
	removed := 0
	for m, sc := range z {
		if sc >= min && sc <= max {
			delete(z, m)
			removed++
		}
	}
	if len(z) == 0 {
		removeKeyLocked(sh, key)
	}
	return removed
}
