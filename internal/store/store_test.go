package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	s := New(4).WithClock(clk.now)
	return s, clk
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSetGetDel(t *testing.T) {
	s, _ := newTestStore()
	s.SetString("foo", []byte("bar"))
	v, ok := s.GetString("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", string(v))

	assert.Equal(t, 1, s.Del("foo"))
	_, ok = s.GetString("foo")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Del("foo"), "idempotent delete")
}

func TestLazyExpiry(t *testing.T) {
	s, clk := newTestStore()
	s.SetString("k", []byte("v"))
	assert.True(t, s.Expire("k", 0))
	clk.advance(time.Millisecond)
	_, ok := s.GetString("k")
	assert.False(t, ok)
	assert.False(t, s.Exists("k"))
}

func TestClearOnOverwrite(t *testing.T) {
	s, _ := newTestStore()
	s.SetString("k", []byte("v1"))
	s.Expire("k", 100)
	s.SetString("k", []byte("v2"))
	assert.Equal(t, int64(-1), s.TTL("k"))
}

func TestKeyTypeExclusivity(t *testing.T) {
	s, _ := newTestStore()
	s.SetString("k", []byte("1"))
	assert.Equal(t, TypeString, s.TypeOf("k"))

	s.HSet("k", []string{"f"}, []string{"v"})
	assert.Equal(t, TypeHash, s.TypeOf("k"))
	_, ok := s.GetString("k")
	assert.False(t, ok, "string slot must be cleared when key becomes a hash")

	s.LPush("k", []string{"a"})
	assert.Equal(t, TypeList, s.TypeOf("k"))
	fields, _ := s.HGetAll("k")
	assert.Empty(t, fields)
}

func TestEmptyErasure(t *testing.T) {
	s, _ := newTestStore()
	s.SAdd("s", []string{"a"})
	s.SRem("s", []string{"a"})
	assert.Equal(t, TypeNone, s.TypeOf("s"))

	s.HSet("h", []string{"f"}, []string{"v"})
	s.HDel("h", []string{"f"})
	assert.Equal(t, TypeNone, s.TypeOf("h"))

	s.LPush("l", []string{"a"})
	s.LPop("l", 1)
	assert.Equal(t, TypeNone, s.TypeOf("l"))

	s.ZAdd("z", []float64{1}, []string{"m"})
	s.ZRem("z", []string{"m"})
	assert.Equal(t, TypeNone, s.TypeOf("z"))
}

func TestIncrDecr(t *testing.T) {
	s, _ := newTestStore()
	v, err := s.Incr("counter", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = s.Incr("counter", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	s.SetString("notnum", []byte("abc"))
	_, err = s.Incr("notnum", 1)
	assert.ErrorIs(t, err, ErrNotInteger)
}

func TestListOrderingAndRange(t *testing.T) {
	s, _ := newTestStore()
	s.LPush("mylist", []string{"a", "b", "c"})
	assert.Equal(t, []string{"c", "b", "a"}, s.LRange("mylist", 0, -1))
}

func TestHSetOverwriteCounts(t *testing.T) {
	s, _ := newTestStore()
	n := s.HSet("h", []string{"f1", "f2"}, []string{"v1", "v2"})
	assert.Equal(t, 2, n)
	n = s.HSet("h", []string{"f1", "f3"}, []string{"v1b", "v3"})
	assert.Equal(t, 1, n)
	v, ok := s.HGet("h", "f1")
	require.True(t, ok)
	assert.Equal(t, "v1b", string(v))
}

func TestSMoveAcrossShards(t *testing.T) {
	s, _ := newTestStore()
	s.SAdd("src", []string{"a", "b"})
	s.SAdd("dest", []string{"c"})
	assert.True(t, s.SMove("src", "dest", "a"))
	assert.False(t, s.SIsMember("src", "a"))
	assert.True(t, s.SIsMember("dest", "a"))
	assert.False(t, s.SMove("src", "dest", "nope"))
}

func TestScanPaging(t *testing.T) {
	s, _ := newTestStore()
	for i := 0; i < 25; i++ {
		s.SetString(string(rune('a'+i)), []byte("v"))
	}
	seen := map[string]bool{}
	cursor := 0
	for {
		next, keys := s.Scan(cursor, "", 10)
		for _, k := range keys {
			seen[k] = true
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	assert.Len(t, seen, 25)
}

func TestMatchGlob(t *testing.T) {
	assert.True(t, MatchGlob("*", "anything"))
	assert.True(t, MatchGlob("foo*", "foobar"))
	assert.True(t, MatchGlob("*bar", "foobar"))
	assert.False(t, MatchGlob("foo*", "barfoo"))
	assert.True(t, MatchGlob("exact", "exact"))
	assert.False(t, MatchGlob("exact", "exacto"))
}
