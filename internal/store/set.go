package store

import "math/rand"

func getOrCreateSetLocked(sh *shard, key string) map[string]struct{} {
	set, ok := sh.sets[key]
	if !ok {
		clearOtherTypeSlotsLocked(sh, key, TypeSet)
		set = make(map[string]struct{})
		sh.sets[key] = set
	}
	return set
}

// SAdd adds each member to the set at key, creating it if absent, and
// returns the count of members that were newly added.
func (s *Store) SAdd(key string, members []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set := getOrCreateSetLocked(sh, key)
	added := 0
	for _, m := range members {
		if _, ok := set[m]; !ok {
			set[m] = struct{}{}
			added++
		}
	}
	return added
}

// SRem removes each member from the set at key, deleting the key if it
// empties. Returns the count actually removed.
func (s *Store) SRem(key string, members []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set, ok := sh.sets[key]
	if !ok {
		return 0
	}
	removed := 0
	for _, m := range members {
		if _, exists := set[m]; exists {
			delete(set, m)
			removed++
		}
	}
	if len(set) == 0 {
		removeKeyLocked(sh, key)
	}
	return removed
}

// SCard returns the cardinality of the set at key, or 0 if missing.
func (s *Store) SCard(key string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return len(sh.sets[key])
}

// SIsMember reports whether member is in the set at key.
func (s *Store) SIsMember(key, member string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	_, ok := sh.sets[key][member]
	return ok
}

// SMembers returns every member of the set at key.
func (s *Store) SMembers(key string) []string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set := sh.sets[key]
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	return out
}

// snapshotSet reads a copy of the set at key under its own shard
// lock; used by SDIFF/SINTER/SUNION, which touch each key independently
// and are not atomic as a whole.
func (s *Store) snapshotSet(key string) map[string]struct{} {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set := sh.sets[key]
	out := make(map[string]struct{}, len(set))
	for m := range set {
		out[m] = struct{}{}
	}
	return out
}

// SDiff subtracts the sets at keys[1:] from the set at keys[0]; a
// missing key is treated as empty.
func (s *Store) SDiff(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	result := s.snapshotSet(keys[0])
	for _, k := range keys[1:] {
		for m := range s.snapshotSet(k) {
			delete(result, m)
		}
	}
	return setToSlice(result)
}

// SInter intersects the sets at all keys; any missing key makes the
// result empty.
func (s *Store) SInter(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	result := s.snapshotSet(keys[0])
	for _, k := range keys[1:] {
		next := s.snapshotSet(k)
		for m := range result {
			if _, ok := next[m]; !ok {
				delete(result, m)
			}
		}
	}
	return setToSlice(result)
}

// SUnion merges the sets at all keys, skipping any that are missing.
func (s *Store) SUnion(keys []string) []string {
	result := make(map[string]struct{})
	for _, k := range keys {
		for m := range s.snapshotSet(k) {
			result[m] = struct{}{}
		}
	}
	return setToSlice(result)
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	return out
}

// SMove atomically (per the pair of shards involved) moves member from
// the set at src to the set at dst, deleting src if it empties.
// Reports whether the move happened (member was present in src).
func (s *Store) SMove(src, dst, member string) bool {
	shSrc, shDst, unlock := s.lockTwo(src, dst)
	defer unlock()
	now := s.nowMillis()
	expireIfNeededLocked(shSrc, src, now)
	expireIfNeededLocked(shDst, dst, now)

	srcSet, ok := shSrc.sets[src]
	if !ok {
		return false
	}
	if _, ok := srcSet[member]; !ok {
		return false
	}
	if src == dst {
		// Moving a member to its own set is a no-op: deleting and
		// recreating the key here would drop its expiry for nothing.
		return true
	}
	delete(srcSet, member)
	if len(srcSet) == 0 {
		removeKeyLocked(shSrc, src)
	}

	dstSet := getOrCreateSetLocked(shDst, dst)
	dstSet[member] = struct{}{}
	return true
}

// SPop removes and returns up to count distinct members from the set at
// key, chosen in Go's randomized map iteration order (deterministic
// presence guarantees only, not order,).
func (s *Store) SPop(key string, count int) []string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set, ok := sh.sets[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, count)
	for m := range set {
		if len(out) >= count {
			break
		}
		out = append(out, m)
	}
	for _, m := range out {
		delete(set, m)
	}
	if len(set) == 0 {
		removeKeyLocked(sh, key)
	}
	return out
}

// SRandMember returns up to count members of the set at key without
// removing them. A negative count is treated as its absolute value;
// this implementation never returns duplicates, a simplification of
// Redis's negative-count "allow repeats" behavior.
func (s *Store) SRandMember(key string, count int) []string {
	if count < 0 {
		count = -count
	}
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	set := sh.sets[key]
	all := make([]string, 0, len(set))
	for m := range set {
		all = append(all, m)
	}
	if count >= len(all) {
		return all
	}
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:count]
}
