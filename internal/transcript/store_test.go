package transcript

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxMessages int64) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, time.Hour, maxMessages)
}

func TestAppendAndList(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", Message{Role: "user", Body: "hi"}))
	require.NoError(t, store.Append(ctx, "s1", Message{Role: "assistant", Body: "Hello! What type of appointment do you need?", Phase: "understanding"}))

	msgs, err := store.List(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "hi", msgs[0].Body)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.Equal(t, "understanding", msgs[1].Phase)
	assert.NotEmpty(t, msgs[0].ID)
	assert.False(t, msgs[0].Timestamp.IsZero())
}

func TestListEmptySession(t *testing.T) {
	store := newTestStore(t, 0)

	msgs, err := store.List(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestListLimitReturnsMostRecent(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, "s1", Message{Role: "user", Body: string(rune('a' + i))}))
	}

	msgs, err := store.List(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "d", msgs[0].Body)
	assert.Equal(t, "e", msgs[1].Body)
}

func TestAppendTrimsToMaxMessages(t *testing.T) {
	store := newTestStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, store.Append(ctx, "s1", Message{Role: "user", Body: string(rune('a' + i))}))
	}

	msgs, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "d", msgs[0].Body)
	assert.Equal(t, "f", msgs[2].Body)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", Message{Role: "user", Body: "one"}))
	require.NoError(t, store.Append(ctx, "s2", Message{Role: "user", Body: "two"}))

	msgs, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "one", msgs[0].Body)
}

func TestAppendRequiresSessionID(t *testing.T) {
	store := newTestStore(t, 0)
	assert.Error(t, store.Append(context.Background(), "", Message{Body: "x"}))
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store

	assert.NoError(t, store.Append(context.Background(), "s1", Message{Body: "x"}))
	msgs, err := store.List(context.Background(), "s1", 0)
	assert.NoError(t, err)
	assert.Nil(t, msgs)

	assert.Nil(t, NewStore(nil, time.Hour, 10))
}
