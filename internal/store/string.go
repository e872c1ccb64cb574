package store

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNotInteger is returned by Incr when the stored value is not a
// base-10 i64, matching the RESP reply "-ERR value is not an integer or
// out of range".
var ErrNotInteger = errors.New("value is not an integer or out of range")

// SetString overwrites key with val in the string slot, clearing any
// prior value in the other four slots and any existing expiry.
func (s *Store) SetString(key string, val []byte) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	removeKeyLocked(sh, key)
	sh.strings[key] = append([]byte(nil), val...)
}

// SetEx overwrites key with val and installs an expiry of now+seconds.
// seconds may be zero, producing an immediately-expired key.
func (s *Store) SetEx(key string, seconds int64, val []byte) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	removeKeyLocked(sh, key)
	sh.strings[key] = append([]byte(nil), val...)
	setExpiryLocked(sh, key, s.nowMillis()+seconds*1000)
}

// GetString applies lazy expiry and returns the stored string, or
// ok=false if key is absent, expired, or holds a non-string type.
func (s *Store) GetString(key string) (val []byte, ok bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())
	v, ok := sh.strings[key]
	return v, ok
}

// MGet returns the GetString result for each key in order; ok is false
// for keys missing, expired, or not of string type (caller encodes Null).
func (s *Store) MGet(keys ...string) (vals [][]byte, oks []bool) {
	vals = make([][]byte, len(keys))
	oks = make([]bool, len(keys))
	for i, k := range keys {
		vals[i], oks[i] = s.GetString(k)
	}
	return vals, oks
}

// MSet overwrites each keys[i] with vals[i] in the string slot, clearing prior
// type and expiry per key. Keys are processed independently and in
// order; the whole operation is not atomic across keys.
func (s *Store) MSet(keys []string, vals [][]byte) {
	for i, k := range keys {
		s.SetString(k, vals[i])
	}
}

// Incr adds delta to the integer value stored at key (treating an
// absent key as 0) and writes the result back as a string. It returns
// ErrNotInteger if the stored value does not parse as a base-10 i64.
func (s *Store) Incr(key string, delta int64) (int64, error) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	expireIfNeededLocked(sh, key, s.nowMillis())

	var cur int64
	if raw, ok := sh.strings[key]; ok {
		parsed, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
		cur = parsed
	} else if existsLocked(sh, key) {
		// key exists under a different type slot
		return 0, ErrNotInteger
	}

	next := cur + delta // wraps on overflow
	sh.strings[key] = []byte(strconv.FormatInt(next, 10))
	return next, nil
}
