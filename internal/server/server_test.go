package server

import (
	"context"
	"net"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sizzlecar/simple-redis/internal/command"
	"github.com/sizzlecar/simple-redis/internal/logging"
	"github.com/sizzlecar/simple-redis/internal/store"
)

// startTestServer binds an ephemeral port and returns a connected
// go-redis client and a stop function that closes the client and shuts
// the server down.
func startTestServer(t *testing.T) (*goredis.Client, func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	handler := command.NewHandler(store.New(8))
	srv := New(addr, handler, logging.New("error"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = srv.ListenAndServe(ctx)
		close(done)
	}()

	// Give the listener a moment to bind before clients dial in.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c, err := net.Dial("tcp", addr); err == nil {
			c.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	client := goredis.NewClient(&goredis.Options{Addr: addr})
	return client, func() {
		client.Close()
		cancel()
		<-done
	}
}

func TestServerStringCommands(t *testing.T) {
	client, stop := startTestServer(t)
	defer stop()
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "greeting", "hello", 0).Err())
	v, err := client.Get(ctx, "greeting").Result()
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	require.NoError(t, client.Expire(ctx, "greeting", time.Minute).Err())
	ttl, err := client.TTL(ctx, "greeting").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
}

func TestServerHashAndListCommands(t *testing.T) {
	client, stop := startTestServer(t)
	defer stop()
	ctx := context.Background()

	require.NoError(t, client.HSet(ctx, "h", "f1", "v1", "f2", "v2").Err())
	vals, err := client.HMGet(ctx, "h", "f1", "f2").Result()
	require.NoError(t, err)
	require.Equal(t, []interface{}{"v1", "v2"}, vals)

	require.NoError(t, client.RPush(ctx, "l", "a", "b", "c").Err())
	items, err := client.LRange(ctx, "l", 0, -1).Result()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, items)
}

func TestServerSetAndZSetCommands(t *testing.T) {
	client, stop := startTestServer(t)
	defer stop()
	ctx := context.Background()

	require.NoError(t, client.SAdd(ctx, "s", "a", "b", "c").Err())
	card, err := client.SCard(ctx, "s").Result()
	require.NoError(t, err)
	require.EqualValues(t, 3, card)

	require.NoError(t, client.ZAdd(ctx, "z",
		goredis.Z{Score: 1, Member: "a"},
		goredis.Z{Score: 2, Member: "b"},
	).Err())
	members, err := client.ZRange(ctx, "z", 0, -1).Result()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, members)
}

func TestServerPing(t *testing.T) {
	client, stop := startTestServer(t)
	defer stop()
	require.NoError(t, client.Ping(context.Background()).Err())
}
