package session

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 1,
		Name:      "Denim Jacket",
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(2),
	})

	require.NoError(t, store.Save(ctx, "sess-1", sess))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token", loaded.CSRFToken)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, "Denim Jacket", loaded.Lines[0].Name)
}

func TestMemoryStore_LoadUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	loaded, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStore_LoadedSessionIsIsolatedCopy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{ProductID: 1, Quantity: decimal.NewFromInt(1)})
	require.NoError(t, store.Save(ctx, "sess-1", sess))

	first, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	first.Lines[0].Quantity = decimal.NewFromInt(99)

	second, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "1", second.Lines[0].Quantity.String())
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", entity.NewCheckoutSession("token")))

	time.Sleep(5 * time.Millisecond)

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStore_ReapKeepsRefreshedEntry(t *testing.T) {
	store := NewMemoryStore(time.Minute).(*memoryStore)
	ctx := context.Background()

	// A Save that lands between Load's stale read and the reap must survive.
	require.NoError(t, store.Save(ctx, "sess-1", entity.NewCheckoutSession("token")))
	store.reapExpired("sess-1")

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token", loaded.CSRFToken)
}

func TestMemoryStore_ReapDropsExpiredEntry(t *testing.T) {
	store := NewMemoryStore(time.Minute).(*memoryStore)

	store.mu.Lock()
	store.entries["sess-1"] = &memoryEntry{
		session:   entity.NewCheckoutSession("token"),
		expiresAt: time.Now().Add(-time.Second),
	}
	store.mu.Unlock()

	store.reapExpired("sess-1")

	store.mu.RLock()
	_, ok := store.entries["sess-1"]
	store.mu.RUnlock()
	assert.False(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", entity.NewCheckoutSession("token")))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
