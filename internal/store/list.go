package store

import "container/list"

func getOrCreateListLocked(sh *shard, key string) *list.List {
	l, ok := sh.lists[key]
	if !ok {
		clearOtherTypeSlotsLocked(sh, key, TypeList)
		l = list.New()
		sh.lists[key] = l
	}
	return l
}

// LPush pushes each value onto the head of the list at key, in the
// order given, so the last argument ends up deepest from the head
// (LPUSH k a b c => head c,b,a). Returns the new length.
func (s *Store) LPush(key string, values []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	l := getOrCreateListLocked(sh, key)
	for _, v := range values {
		l.PushFront(v)
	}
	return l.Len()
}

// RPush pushes each value onto the tail of the list at key, in argument
// order. Returns the new length.
func (s *Store) RPush(key string, values []string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	l := getOrCreateListLocked(sh, key)
	for _, v := range values {
		l.PushBack(v)
	}
	return l.Len()
}

func popLocked(sh *shard, key string, count int, front bool) []string {
	l, ok := sh.lists[key]
	if !ok {
		return nil
	}
	var out []string
	for i := 0; i < count && l.Len() > 0; i++ {
		var e *list.Element
		if front {
			e = l.Front()
		} else {
			e = l.Back()
		}
		out = append(out, e.Value.(string))
		l.Remove(e)
	}
	if l.Len() == 0 {
		removeKeyLocked(sh, key)
	}
	return out
}

// LPop removes and returns up to count values from the head of the list
// at key. count<1 is treated as 1. If the list empties, the key is
// deleted.
func (s *Store) LPop(key string, count int) []string {
	if count < 1 {
		count = 1
	}
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return popLocked(sh, key, count, true)
}

// RPop removes and returns up to count values from the tail of the list
// at key.
func (s *Store) RPop(key string, count int) []string {
	if count < 1 {
		count = 1
	}
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	return popLocked(sh, key, count, false)
}

// LLen returns the length of the list at key, or 0 if missing.
func (s *Store) LLen(key string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	l, ok := sh.lists[key]
	if !ok {
		return 0
	}
	return l.Len()
}

// LRange returns the inclusive [start, stop] slice of the list at key,
// with Redis-style negative indices counted from the tail, clipped to
// the valid range. Returns nil if the list is missing or the range is
// empty.
func (s *Store) LRange(key string, start, stop int) []string {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	l, ok := sh.lists[key]
	if !ok {
		return nil
	}
	n := l.Len()
	start = normalizeIndex(start, n)
	stop = normalizeIndex(stop, n)
	if start < 0 {
		start = 0
	}
	if stop > n-1 {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil
	}
	out := make([]string, 0, stop-start+1)
	i := 0
	for e := l.Front(); e != nil; e = e.Next() {
		if i >= start && i <= stop {
			out = append(out, e.Value.(string))
		}
		i++
		if i > stop {
			break
		}
	}
	return out
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		i = n + i
	}
	return i
}

// LRem removes up to |count| occurrences of element from the list at
// key: from the head if count>0, from the tail if count<0, all
// occurrences if count==0. Returns the number removed; deletes the key
// if the list empties.
func (s *Store) LRem(key string, count int, element string) int {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	l, ok := sh.lists[key]
	if !ok {
		return 0
	}

	removed := 0
	switch {
	case count == 0:
		for e := l.Front(); e != nil; {
			next := e.Next()
			if e.Value.(string) == element {
				l.Remove(e)
				removed++
			}
			e = next
		}
	case count > 0:
		for e := l.Front(); e != nil && removed < count; {
			next := e.Next()
			if e.Value.(string) == element {
				l.Remove(e)
				removed++
			}
			e = next
		}
	default:
		for e := l.Back(); e != nil && removed < -count; {
			prev := e.Prev()
			if e.Value.(string) == element {
				l.Remove(e)
				removed++
			}
			e = prev
		}
	}

	if l.Len() == 0 {
		removeKeyLocked(sh, key)
	}
	return removed
}
