package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

type payload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestGetSetJSON(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	var missing payload
	err := GetJSON(ctx, rdb, "absent", &missing)
	assert.ErrorIs(t, err, ErrCacheMiss)

	SetJSON(ctx, rdb, UserKey(7), payload{ID: 7, Name: "alice"}, time.Minute)

	var got payload
	require.NoError(t, GetJSON(ctx, rdb, UserKey(7), &got))
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "alice", got.Name)
}

func TestGetJSONNilClient(t *testing.T) {
	var dest payload
	err := GetJSON(context.Background(), nil, "any", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestAside(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	calls := 0
	load := func() (payload, error) {
		calls++
		return payload{ID: 1, Name: "bob"}, nil
	}

	got, err := Aside(ctx, rdb, "p:1", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, 1, calls)

	// Second call should be served from cache.
	got, err = Aside(ctx, rdb, "p:1", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, 1, calls)
}

func TestAsideLoadError(t *testing.T) {
	rdb := newTestRedis(t)

	wantErr := errors.New("boom")
	_, err := Aside(context.Background(), rdb, "p:2", time.Minute, func() (payload, error) {
		return payload{}, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	var dest payload
	assert.ErrorIs(t, GetJSON(context.Background(), rdb, "p:2", &dest), ErrCacheMiss)
}

func TestAsideNilClientFallsThrough(t *testing.T) {
	got, err := Aside(context.Background(), nil, "p:3", time.Minute, func() (payload, error) {
		return payload{ID: 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
}

func TestInvalidateGlobalFeed(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, rdb, GlobalFeedKey(20, 0), payload{ID: 1}, time.Minute)
	SetJSON(ctx, rdb, GlobalFeedKey(20, 20), payload{ID: 2}, time.Minute)
	SetJSON(ctx, rdb, UserKey(1), payload{ID: 1}, time.Minute)

	InvalidateGlobalFeed(ctx, rdb)

	var dest payload
	assert.ErrorIs(t, GetJSON(ctx, rdb, GlobalFeedKey(20, 0), &dest), ErrCacheMiss)
	assert.ErrorIs(t, GetJSON(ctx, rdb, GlobalFeedKey(20, 20), &dest), ErrCacheMiss)
	assert.NoError(t, GetJSON(ctx, rdb, UserKey(1), &dest))
}
