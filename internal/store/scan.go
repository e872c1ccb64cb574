package store

import "sort"

const defaultScanCount = 10

// allLiveKeys returns every key across the five type slots, on every
// shard, skipping keys whose expiry has already passed. It does not
// evict expired keys — only a write-locked accessor may do that — so a
// key lazily expires for KEYS/SCAN visibility without paying for a
// write lock on every shard just to enumerate.
func (s *Store) allLiveKeys() []string {
	now := s.nowMillis()
	var keys []string
	for _, sh := range s.shards {
		sh.mu.RLock()
		for k := range sh.strings {
			if !isExpiredLocked(sh, k, now) {
				keys = append(keys, k)
			}
		}
		for k := range sh.hashes {
			if !isExpiredLocked(sh, k, now) {
				keys = append(keys, k)
			}
		}
		for k := range sh.lists {
			if !isExpiredLocked(sh, k, now) {
				keys = append(keys, k)
			}
		}
		for k := range sh.sets {
			if !isExpiredLocked(sh, k, now) {
				keys = append(keys, k)
			}
		}
		for k := range sh.zsets {
			if !isExpiredLocked(sh, k, now) {
				keys = append(keys, k)
			}
		}
		sh.mu.RUnlock()
	}
	sort.Strings(keys)
	return keys
}

// Keys returns every live key matching pattern.
func (s *Store) Keys(pattern string) []string {
	all := s.allLiveKeys()
	out := make([]string, 0, len(all))
	for _, k := range all {
		if MatchGlob(pattern, k) {
			out = append(out, k)
		}
	}
	return out
}

// Scan implements the linear-cursor SCAN of cursor is an
// offset into the sorted snapshot of all live keys. It returns the next
// cursor (0 means done) and up to count keys from that offset, filtered
// by pattern after paging so COUNT still bounds the amount of work done
// per call.
func (s *Store) Scan(cursor int, pattern string, count int) (nextCursor int, keys []string) {
	if count <= 0 {
		count = defaultScanCount
	}
	all := s.allLiveKeys()
	if cursor < 0 || cursor >= len(all) {
		return 0, nil
	}
	end := cursor + count
	if end >= len(all) {
		end = len(all)
		nextCursor = 0
	} else {
		nextCursor = end
	}
	page := all[cursor:end]
	keys = make([]string, 0, len(page))
	for _, k := range page {
		if pattern == "" || MatchGlob(pattern, k) {
			keys = append(keys, k)
		}
	}
	return nextCursor, keys
}
