package store

// HSet creates the hash at key if absent, writes each field/value pair,
// and returns the number of fields that were newly inserted (existing
// fields are overwritten without counting.7).
func (s *Store) HSet(key string, fields, values []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())

	h, ok := sh.hashes[key]
	if !ok {
		clearOtherTypeSlotsLocked(sh, key, TypeHash)
		h = make(map[string][]byte)
		sh.hashes[key] = h
	}
	inserted := 0
	for i, f := range fields {
		if _, exists := h[f]; !exists {
			inserted++
		}
		h[f] = append([]byte(nil), values[i]...)
	}
	return inserted
}

// HGet returns the value of field in the hash at key.
func (s *Store) HGet(key, field string) (val []byte, ok bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	h, exists := sh.hashes[key]
	if !exists {
		return nil, false
	}
	v, ok := h[field]
	return v, ok
}

// HMGet returns the per-field lookup results for fields, in order.
func (s *Store) HMGet(key string, fields []string) (vals [][]byte, oks []bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	vals = make([][]byte, len(fields))
	oks = make([]bool, len(fields))
	h := sh.hashes[key]
	for i, f := range fields {
		if h == nil {
			continue
		}
		if v, ok := h[f]; ok {
			vals[i], oks[i] = v, true
		}
	}
	return vals, oks
}

// HMSet overwrites each field in fields/values without counting
// insertions, creating the hash if absent.
func (s *Store) HMSet(key string, fields, values []string) {
	s.HSet(key, fields, values)
}

// HDel removes each named field from the hash at key, deleting the key
// itself if it becomes empty. Returns the count actually removed.
func (s *Store) HDel(key string, fields []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	h, ok := sh.hashes[key]
	if !ok {
		return 0
	}
	removed := 0
	for _, f := range fields {
		if _, exists := h[f]; exists {
			delete(h, f)
			removed++
		}
	}
	if len(h) == 0 {
		removeKeyLocked(sh, key)
	}
	return removed
}

// HGetAll returns the interleaved field/value pairs of the hash at key,
// in unspecified order.
func (s *Store) HGetAll(key string) (fields, values []string) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	h := sh.hashes[key]
	fields = make([]string, 0, len(h))
	values = make([]string, 0, len(h))
	for f, v := range h {
		fields = append(fields, f)
		values = append(values, string(v))
	}
	return fields, values
}

// HKeys returns the field names of the hash at key.
func (s *Store) HKeys(key string) []string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	h := sh.hashes[key]
	out := make([]string, 0, len(h))
	for f := range h {
		out = append(out, f)
	}
	return out
}

// HVals returns the values of the hash at key.
func (s *Store) HVals(key string) []string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	h := sh.hashes[key]
	out := make([]string, 0, len(h))
	for _, v := range h {
		out = append(out, string(v))
	}
	return out
}
