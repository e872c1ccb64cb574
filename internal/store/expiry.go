package store

// The helpers in this file assume the caller already holds sh.mu for
// writing; they never lock or unlock themselves.

// isExpiredLocked reports whether key has an expiry in the past relative
// to nowMs. A key with no expiry entry is never expired.
func isExpiredLocked(sh *shard, key string, nowMs int64) bool {
	exp, ok := sh.expiry[key]
	if !ok {
		return false
	}
	return exp <= nowMs
}

// removeKeyLocked deletes key from every type slot and the expiry map.
// Safe to call even if the key is absent from some or all of them.
func removeKeyLocked(sh *shard, key string) {
	delete(sh.strings, key)
	delete(sh.hashes, key)
	delete(sh.lists, key)
	delete(sh.sets, key)
	delete(sh.zsets, key)
	delete(sh.expiry, key)
}

// expireIfNeededLocked removes key if it is expired and reports whether
// it did. Every read/write path calls this first so expiry is enforced
// lazily, on access, rather than by a background sweep.
func expireIfNeededLocked(sh *shard, key string, nowMs int64) (expired bool) {
	if isExpiredLocked(sh, key, nowMs) {
		removeKeyLocked(sh, key)
		return true
	}
	return false
}

// clearOtherTypeSlotsLocked deletes key from every type slot except
// keep, so a key occupies at most one type slot once a command is about
// to create a composite value under a new type. Unlike removeKeyLocked
// it leaves any existing expiry alone: only the string-specific
// commands (SET/MSET/SETEX) clear expiry on overwrite.
func clearOtherTypeSlotsLocked(sh *shard, key string, keep string) {
	if keep != TypeString {
		delete(sh.strings, key)
	}
	if keep != TypeHash {
		delete(sh.hashes, key)
	}
	if keep != TypeList {
		delete(sh.lists, key)
	}
	if keep != TypeSet {
		delete(sh.sets, key)
	}
	if keep != TypeZSet {
		delete(sh.zsets, key)
	}
}

// typeOfLocked returns which of the five type slots key currently
// occupies, or TypeNone. At most one slot is ever populated for a
// given key.
func typeOfLocked(sh *shard, key string) string {
	if _, ok := sh.strings[key]; ok {
		return TypeString
	}
	if _, ok := sh.hashes[key]; ok {
		return TypeHash
	}
	if _, ok := sh.lists[key]; ok {
		return TypeList
	}
	if _, ok := sh.sets[key]; ok {
		return TypeSet
	}
	if _, ok := sh.zsets[key]; ok {
		return TypeZSet
	}
	return TypeNone
}

// existsLocked reports whether key occupies any type slot.
func existsLocked(sh *shard, key string) bool {
	return typeOfLocked(sh, key) != TypeNone
}

// setExpiryLocked installs an absolute-millisecond expiry for key.
func setExpiryLocked(sh *shard, key string, absoluteMs int64) {
	sh.expiry[key] = absoluteMs
}

// removeExpiryLocked clears any expiry on key and reports whether one
// had been set.
func removeExpiryLocked(sh *shard, key string) bool {
	if _, ok := sh.expiry[key]; ok {
		delete(sh.expiry, key)
		return true
	}
	return false
}

// ttlMsLocked returns the remaining milliseconds until expiry, or -1 if
// key has no expiry set. Callers are expected to have already run
// expireIfNeededLocked so a missing key is handled by the caller.
func ttlMsLocked(sh *shard, key string, nowMs int64) int64 {
	exp, ok := sh.expiry[key]
	if !ok {
		return -1
	}
	remaining := exp - nowMs
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Exists reports whether key is present (after lazy expiry).
func (s *Store) Exists(key string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return existsLocked(sh, key)
}

// ExistsCount counts how many of keys are present, each checked and
// lazily expired independently; the count as a whole is not atomic
// across keys.
func (s *Store) ExistsCount(keys ...string) int {
	n := 0
	for _, k := range keys {
		if s.Exists(k) {
			n++
		}
	}
	return n
}

// TypeOf returns the RESP TYPE reply for key: one of string/hash/list/
// set/zset/none.
func (s *Store) TypeOf(key string) string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return typeOfLocked(sh, key)
}

// Del removes each key from whichever slot it occupies and clears its
// expiry, returning the count of keys that actually existed. Each key is
// handled under its own shard lock; DEL as a whole is not atomic.
func (s *Store) Del(keys ...string) int {
	removed := 0
	for _, k := range keys {
		sh := s.shardFor(k)
		sh.mu.Lock()
		expireIfNeededLocked(sh, k, s.nowMillis())
		if existsLocked(sh, k) {
			removeKeyLocked(sh, k)
			removed++
		}
		sh.mu.Unlock()
	}
	return removed
}

// Expire installs an expiry of now+seconds on key if it exists, and
// reports whether it did.
func (s *Store) Expire(key string, seconds int64) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	now := s.nowMillis()
	expireIfNeededLocked(sh, key, now)
	if !existsLocked(sh, key) {
		return false
	}
	setExpiryLocked(sh, key, now+seconds*1000)
	return true
}

// TTL returns -2 if key is missing or expired, -1 if it has no expiry,
// or the remaining seconds (floor division) otherwise.
func (s *Store) TTL(key string) int64 {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	now := s.nowMillis()
	expireIfNeededLocked(sh, key, now)
	if !existsLocked(sh, key) {
		return -2
	}
	ms := ttlMsLocked(sh, key, now)
	if ms < 0 {
		return -1
	}
	return ms / 1000
}

// Persist removes key's expiry, reporting whether one was removed.
func (s *Store) Persist(key string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	if !existsLocked(sh, key) {
		return false
	}
	return removeExpiryLocked(sh, key)
}
